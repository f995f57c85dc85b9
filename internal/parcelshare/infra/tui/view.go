package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
)

const (
	brandTitle   = "ParcelShare"
	logoutTitle  = "Logout"
	defaultWidth = 80
)

// MarkdownRenderer renders markdown wrapped to width.
type MarkdownRenderer func(markdown string, width int) (string, error)

func GlamourMarkdown(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func PlainMarkdown(markdown string, _ int) (string, error) {
	return markdown, nil
}

// RenderOptions configure RenderScreen.
type RenderOptions struct {
	Styles   Styles
	Markdown MarkdownRenderer
	Width    int
	Now      time.Time
	// Expand shows the details of every list item.
	Expand bool
}

// RenderScreen renders s once with the chrome of sess, for output outside
// the interactive program.
func RenderScreen(s screen.Screen, sess domain.Session, opts RenderOptions) string {
	v := view{
		styles:   opts.Styles,
		markdown: opts.Markdown,
		width:    opts.Width,
		now:      opts.Now,
		expand:   opts.Expand,
	}
	chrome := router.SelectChrome(sess.IsAuthenticated(), sess.Role)

	var b strings.Builder
	b.WriteString(v.header(sess, chrome, s.Route().Path, -1))
	b.WriteString("\n\n")
	b.WriteString(v.body(s, -1, "", nil))
	return b.String()
}

type view struct {
	styles   Styles
	markdown MarkdownRenderer
	width    int
	now      time.Time
	expand   bool
}

func (v view) wrapWidth() int {
	if v.width <= 0 {
		return defaultWidth
	}
	return v.width
}

// navItems lists the nav bar entries: chrome links, then logout.
func navItems(chrome router.Chrome) []router.Link {
	items := chrome.Links()
	if chrome.HasLogout() {
		items = append(items, router.Link{Title: logoutTitle})
	}
	return items
}

func (v view) header(sess domain.Session, chrome router.Chrome, activePath string, selected int) string {
	parts := []string{v.styles.Brand.Render(brandTitle)}
	for i, item := range navItems(chrome) {
		title := item.Title
		if i == selected {
			title = "[" + title + "]"
		}
		if item.Path != "" && item.Path == activePath {
			parts = append(parts, v.styles.ActiveLink.Render(title))
			continue
		}
		parts = append(parts, v.styles.Link.Render(title))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if !sess.IsAuthenticated() {
		return bar
	}
	return bar + "\n" + v.styles.Welcome.Render(fmt.Sprintf("Welcome, %s", sess.Role))
}

func (v view) banner(b screen.Banner) string {
	switch {
	case !b.Visible():
		return ""
	case b.Kind == screen.BannerSuccess:
		return v.styles.Success.Render(b.Text)
	default:
		return v.styles.Error.Render(b.Text)
	}
}

// body renders the screen. cursor selects a list row or a form field, -1
// selects nothing. field renders a form field; nil renders the plain value.
func (v view) body(s screen.Screen, cursor int, spin string, field func(i int, f screen.Field) string) string {
	var b strings.Builder
	if banner := v.banner(s.Banner()); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	switch s := s.(type) {
	case *screen.Placeholder:
		b.WriteString(v.styles.Muted.Render(s.Text()))
	case *screen.Home:
		b.WriteString(v.home(s))
	case formScreen:
		b.WriteString(v.form(s, cursor, spin, field))
	default:
		b.WriteString(v.list(s, cursor, spin))
	}
	return b.String()
}

func (v view) home(s *screen.Home) string {
	md := s.Markdown()
	if v.markdown == nil {
		return md
	}

	out, err := v.markdown(md, v.wrapWidth())
	if err != nil {
		return md
	}
	return out
}

func (v view) list(s screen.Screen, cursor int, spin string) string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(s.Route().Title))
	b.WriteString("\n")

	if l, ok := s.(interface{ Loading() bool }); ok && l.Loading() {
		b.WriteString(spin + v.styles.Muted.Render(" Loading..."))
		return b.String()
	}

	if stats := v.stats(s); stats != "" {
		b.WriteString(v.styles.Badge.Render(stats))
		b.WriteString("\n\n")
	}

	rows, _ := listRows(s, v.now)
	if len(rows) == 0 {
		b.WriteString(v.styles.Muted.Render(emptyText(s.Route())))
		return b.String()
	}

	selectable := 0
	for _, r := range rows {
		selected := false
		if !r.placeholder {
			selected = selectable == cursor
			selectable++
		}
		b.WriteString(v.row(r, selected, spin))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v view) row(r row, selected bool, spin string) string {
	indent := ""
	if r.travelPlan != 0 {
		indent = "    "
	}
	if r.placeholder {
		return indent + v.styles.Muted.Render(r.title)
	}

	marker := "  "
	title := r.title
	if selected {
		marker = "> "
		title = v.styles.Selected.Render(title)
	}

	line := indent + marker + title + " " + v.styles.Badge.Render("["+r.status+"]")
	if r.urgent {
		line += " " + v.styles.Urgent.Render("URGENT")
	}
	if r.processing {
		line += " " + spin
	}
	if r.summary != "" {
		line += "\n" + indent + "    " + v.styles.Muted.Render(r.summary)
	}
	if (r.expanded || v.expand) && len(r.details) > 0 {
		for _, d := range r.details {
			line += "\n" + indent + "    " + d
		}
	}
	return line
}

func (v view) stats(s screen.Screen) string {
	switch s := s.(type) {
	case interface {
		Summary(time.Time) screen.Summary
	}:
		sum := s.Summary(v.now)
		return fmt.Sprintf("Total: %d · Urgent: %d · Weight: %dg", sum.Total, sum.Urgent, sum.WeightGrams)
	case interface {
		CountByStatus(domain.Status) int
		Items() []domain.ParcelMatch
	}:
		return fmt.Sprintf("Total: %d · Delivered: %d", len(s.Items()), s.CountByStatus(domain.StatusDelivered))
	case interface {
		CountByStatus(domain.Status) int
		Items() []domain.TravelerMatch
	}:
		return fmt.Sprintf("Total: %d · Delivered: %d", len(s.Items()), s.CountByStatus(domain.StatusDelivered))
	default:
		return ""
	}
}

func emptyText(route router.Route) string {
	switch route.Screen {
	case router.ScreenParcelRequests:
		return "No parcel requests yet. Requests from travelers will show up here."
	case router.ScreenParcelAccepted:
		return "No accepted requests yet."
	case router.ScreenParcelMatched, router.ScreenTravelerMatched:
		return "No matches yet."
	case router.ScreenTravelerSuggestions, router.ScreenTravelerAll:
		return "No travel plans yet. Add one to get parcel suggestions."
	case router.ScreenTravelerRequests:
		return "No parcel requests yet."
	default:
		return "Nothing here yet."
	}
}

type formScreen interface {
	screen.Screen
	Fields() []screen.Field
	Submit() screen.Task
	Submitting() bool
}

func (v view) form(s formScreen, cursor int, spin string, field func(int, screen.Field) string) string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(s.Route().Title))
	b.WriteString("\n")

	for i, f := range s.Fields() {
		value := *f.Value
		if f.Secret {
			value = strings.Repeat("*", len([]rune(value)))
		}
		if field != nil {
			value = field(i, f)
		}

		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString(marker + v.styles.Label.Render(f.Label) + v.styles.Input.Render(value) + "\n")
	}

	if signup, ok := s.(*screen.Signup); ok {
		b.WriteString("  " + v.styles.Label.Render("Role") + v.styles.Input.Render(string(signup.Input.Role)) + "\n")
	}

	if s.Submitting() {
		b.WriteString("\n" + spin + v.styles.Muted.Render(" Submitting..."))
	}
	return strings.TrimRight(b.String(), "\n")
}
