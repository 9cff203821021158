package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ahamedusman/portfolio-core/internal/pkg/mail"
)

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestRouter(sender mail.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(sender, "owner@example.com")).RegisterRoutes(r.Group(""))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRelaysMessage(t *testing.T) {
	sender := &fakeSender{}
	r := newTestRouter(sender)

	w := post(r, `{"name":"Jane","email":"jane@example.com","subject":"Hello","message":"Nice site!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Message sent successfully") {
		t.Fatalf("body = %s", w.Body.String())
	}
	if len(sender.sent) != 1 {
		t.Fatalf("relay count = %d, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To[0] != "owner@example.com" || msg.ReplyTo != "jane@example.com" {
		t.Fatalf("message routing wrong: %+v", msg)
	}
	if !strings.Contains(msg.HTML, "Nice site!") || !strings.Contains(msg.HTML, "Jane") {
		t.Fatal("rendered mail missing submission fields")
	}
}

func TestSubmitMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"a@b.co","subject":"s","message":"m"}`},
		{"no email", `{"name":"n","subject":"s","message":"m"}`},
		{"no subject", `{"name":"n","email":"a@b.co","message":"m"}`},
		{"no message", `{"name":"n","email":"a@b.co","subject":"s"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{}
			w := post(newTestRouter(sender), tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if body := strings.TrimSpace(w.Body.String()); body != `{"error":"Missing required fields"}` {
				t.Fatalf("body = %s", body)
			}
			if len(sender.sent) != 0 {
				t.Fatal("rejected submission must not be relayed")
			}
		})
	}
}

func TestSubmitInvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "user@nodot", "a b@c.com", "@missing.local"} {
		sender := &fakeSender{}
		w := post(newTestRouter(sender), `{"name":"n","email":"`+email+`","subject":"s","message":"m"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", email, w.Code)
		}
		if body := strings.TrimSpace(w.Body.String()); body != `{"error":"Invalid email format"}` {
			t.Fatalf("%s: body = %s", email, body)
		}
		if len(sender.sent) != 0 {
			t.Fatalf("%s: invalid submission was relayed", email)
		}
	}
}

func TestSubmitRelayFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	w := post(newTestRouter(sender), `{"name":"n","email":"a@b.co","subject":"s","message":"m"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"error":"Failed to process your request"}` {
		t.Fatalf("body = %s", body)
	}
}
