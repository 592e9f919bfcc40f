package titling

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"lawchat-backend/config"
	"lawchat-backend/dao"
	"lawchat-backend/model"
	"lawchat-backend/utils"
)

const (
	taskChanSize  = 100
	workerNum     = 2
	llmAttempts   = 3
	maxTitleRunes = 60
)

//go:embed prompts/titling.txt
var titlePrompt string

type Task struct {
	SessionID string
}

// Titler names sessions after their first user message. It is best-effort
// only: tasks may be dropped under load and failures are logged, never
// surfaced to the chat flow.
type Titler struct {
	llm      llms.Model
	sessions *dao.SessionDAO
	messages *dao.MessageDAO
	taskChan chan Task
	tmpl     *template.Template
}

func New(cfg config.ModelConfig, sessions *dao.SessionDAO, messages *dao.MessageDAO) (*Titler, error) {
	llm, err := openai.New(
		openai.WithModel(cfg.Name),
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithHTTPClient(utils.DefaultHTTPClient()),
	)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("prompt").Parse(titlePrompt)
	if err != nil {
		return nil, err
	}

	return &Titler{
		llm:      llm,
		sessions: sessions,
		messages: messages,
		taskChan: make(chan Task, taskChanSize),
		tmpl:     tmpl,
	}, nil
}

func (t *Titler) Run() {
	for i := 1; i <= workerNum; i++ {
		go t.work(i)
	}
}

// Enqueue registers a titling task without blocking the caller. Tasks are
// dropped when the queue is full.
func (t *Titler) Enqueue(sessionID string) {
	select {
	case t.taskChan <- Task{SessionID: sessionID}:
	default:
		slog.Warn("Title queue full, dropping task", "session_id", sessionID)
	}
}

func (t *Titler) Shutdown() {
	close(t.taskChan)
}

func (t *Titler) work(id int) {
	slog.Info("Starting title worker", "worker_id", id)
	defer slog.Info("Title worker exit", "worker_id", id)

	ctx := context.Background()
	for task := range t.taskChan {
		if err := t.process(ctx, task); err != nil {
			slog.Error("Failed to title session",
				"session_id", task.SessionID,
				"err", err,
			)
		}
	}
}

func (t *Titler) process(ctx context.Context, task Task) error {
	session, err := t.sessions.GetByID(ctx, task.SessionID)
	if err != nil {
		return err
	}
	// Deleted or already renamed by the user: nothing to do.
	if session == nil || session.Title != model.DefaultSessionTitle {
		return nil
	}

	messages, err := t.messages.ListBySession(ctx, task.SessionID)
	if err != nil {
		return err
	}

	var content string
	for _, m := range messages {
		if m.Role == model.RoleUser {
			content = m.Content
			break
		}
	}
	if content == "" {
		return nil
	}

	title, err := t.generateTitle(ctx, content)
	if err != nil {
		return err
	}
	if title == "" {
		return nil
	}

	_, err = t.sessions.Update(ctx, task.SessionID, map[string]any{
		"title":      title,
		"updated_at": time.Now(),
	})
	return err
}

func (t *Titler) generateTitle(ctx context.Context, content string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Content string
	}{
		Content: content,
	}
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	var title string
	err := retry.Do(
		func() error {
			resp, err := llms.GenerateFromSinglePrompt(ctx, t.llm, buf.String())
			if err != nil {
				return err
			}
			title = resp
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(llmAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Retrying title generation", "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		return "", err
	}

	return clean(title), nil
}

func clean(title string) string {
	title = strings.TrimSpace(title)
	title = strings.Trim(title, `"'`)
	runes := []rune(title)
	if len(runes) > maxTitleRunes {
		title = string(runes[:maxTitleRunes])
	}
	return strings.TrimSpace(title)
}
