package messenger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"shopbot/internal/domain/service"
)

// consoleMessenger prints outbound actions instead of calling the platform.
// shopctl uses it to replay turns locally.
type consoleMessenger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleMessenger writes every outbound action to out.
func NewConsoleMessenger(out io.Writer) service.MessengerService {
	return &consoleMessenger{out: out}
}

func (m *consoleMessenger) SendText(_ context.Context, recipientID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := fmt.Fprintf(m.out, "[bot → %s]\n%s\n", recipientID, text)

	return err
}

func (m *consoleMessenger) TagAccount(_ context.Context, recipientID string, labels []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := fmt.Fprintf(m.out, "[label %s] %s\n", recipientID, strings.Join(labels, ", "))

	return err
}
