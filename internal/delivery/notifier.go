package delivery

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Toast durations: every message auto-dismisses after three seconds except
// the stock-ceiling rejection on a quantity increase, which uses two.
const (
	DefaultToastDuration         = 3 * time.Second
	IncreaseCeilingToastDuration = 2 * time.Second
)

// Toast is one transient user-facing message and how long to display it.
type Toast struct {
	Message    string `json:"message"`
	DurationMS int64  `json:"duration_ms"`
}

// Notifier holds the single currently visible toast. Pushing replaces
// whatever was showing; a toast disappears once its duration has elapsed.
type Notifier struct {
	mu        sync.Mutex
	current   Toast
	expiresAt time.Time
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Push(message string, duration time.Duration) Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = Toast{
		Message:    message,
		DurationMS: duration.Milliseconds(),
	}
	n.expiresAt = time.Now().Add(duration)
	return n.current
}

// Current returns the visible toast, if it has not expired yet.
func (n *Notifier) Current() (Toast, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if time.Now().After(n.expiresAt) {
		return Toast{}, false
	}
	return n.current, true
}

type NotificationHandler struct {
	notifier *Notifier
	log      *logrus.Logger
}

func NewNotificationHandler(notifier *Notifier, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		log:      logger,
	}
}

func (h *NotificationHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/notification", h.GetNotification)
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	toast, ok := h.notifier.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	SuccessResponse(c, http.StatusOK, "Notification retrieved successfully", toast)
}
