package mailx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/gymtrack/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name string
		msg  mailx.Message
		ok   bool
	}{
		{"valid", mailx.Message{To: "a@example.com", Subject: "hi"}, true},
		{"named", mailx.Message{To: "Ann <a@example.com>", Subject: "hi"}, true},
		{"no subject", mailx.Message{To: "a@example.com"}, false},
		{"bad address", mailx.Message{To: "nope", Subject: "hi"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, mailx.ErrInvalidMessage)
			}
		})
	}
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	m := mailx.LogMailer{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, m.Send(t.Context(), mailx.Message{To: "a@example.com", Subject: "Verify your email", Body: "link"}))
	require.Contains(t, buf.String(), "Verify your email")
	require.Contains(t, buf.String(), "a@example.com")

	require.Error(t, m.Send(t.Context(), mailx.Message{To: "", Subject: "x"}))
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := mailx.NewSMTPMailer(mailx.SMTPConfig{From: "gym@example.com"})
	require.Error(t, err)

	m, err := mailx.NewSMTPMailer(mailx.SMTPConfig{Host: "localhost", Port: 2525, From: "gym@example.com"})
	require.NoError(t, err)
	require.NotNil(t, m)
}
