package tui

import (
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.state == StateLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Loading.Render(" Loading issues..."))
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.viewNotice())
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title line.
func (m *Model) viewHeader() string {
	return m.styles.Header.Render("GitHub Issues - " + m.repoName)
}

// viewNotice renders the transient notice with its severity color.
func (m *Model) viewNotice() string {
	switch m.noticeKind {
	case NoticeWarning:
		return m.styles.NoticeWarning.Render(m.notice)
	case NoticeError:
		return m.styles.NoticeError.Render(m.notice)
	case NoticeInfo:
		return m.styles.NoticeInfo.Render(m.notice)
	}
	return m.styles.NoticeInfo.Render(m.notice)
}

// viewFooter renders the key hints.
func (m *Model) viewFooter() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts,
			m.styles.FooterKey.Render(help.Key)+" "+m.styles.Footer.Render(help.Desc))
	}
	return m.styles.Footer.Render(strings.Join(parts, "  •  "))
}
