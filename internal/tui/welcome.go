package tui

import (
	"strings"

	"github.com/MKhiriev/go-tabpfn-client/internal/app"
)

func renderWelcome() string {
	return bannerStyle.Render(app.MsgWelcome) + "\n" + app.MsgWelcomeNotice + "\n"
}

func renderGreetingMessages(messages []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(app.MsgGreetingHeader))
	b.WriteString("\n")
	for _, msg := range messages {
		b.WriteString(overlayBoxStyle.Render(msg))
		b.WriteString("\n")
	}
	return b.String()
}
