package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	Success = "success"
	Danger  = "danger"
)

type Message struct {
	Category string
	Text     string
}

// Add queues a one-shot notice in the session; it survives the redirect
// that follows and is consumed by the next rendered page.
func Add(c *gin.Context, category, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(text, category)
	_ = sess.Save()
}

// Pop drains all pending notices.
func Pop(c *gin.Context) []Message {
	sess := sessions.Default(c)

	var out []Message
	for _, category := range []string{Success, Danger} {
		for _, v := range sess.Flashes(category) {
			if text, ok := v.(string); ok {
				out = append(out, Message{Category: category, Text: text})
			}
		}
	}
	_ = sess.Save()

	return out
}
