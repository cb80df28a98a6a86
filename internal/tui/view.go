package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/content"
	"portfolio/internal/model"
)

func (m *Model) View() string {
	st := m.ctrl.State()

	var b strings.Builder
	b.WriteString(m.renderTabs(st.Page))
	b.WriteString("\n")

	switch st.Page {
	case model.PageHome:
		b.WriteString(m.renderHome())
	case model.PageAbout:
		b.WriteString(m.renderAbout())
	case model.PageContact:
		b.WriteString(m.renderContact())
	default:
		cat, _ := st.Page.Category()
		if id, ok := st.Selection(cat); ok {
			b.WriteString(m.renderDetail(cat, id))
		} else {
			b.WriteString(m.renderList(st, cat))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m *Model) renderTabs(active model.Page) string {
	pages := model.Pages()
	tabs := make([]string, len(pages))
	for i, p := range pages {
		label := string(rune('1'+i)) + " " + p.Label
		if p.Page == active {
			tabs[i] = m.styles.tabActive.Render(label)
		} else {
			tabs[i] = m.styles.tabInactive.Render(label)
		}
	}
	return m.styles.tabsRow.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *Model) renderHome() string {
	p := m.profile
	lines := []string{
		m.styles.subtle.Render(p.Greeting),
		m.styles.title.Render(p.Name),
		p.Role,
		"",
		m.styles.body.Render(p.Intro),
	}
	if p.Secondary != "" {
		lines = append(lines, "", m.styles.body.Render(p.Secondary))
	}
	for _, c := range model.Categories() {
		res, err := m.content.List(m.ctx, c, model.FilterFeatured, "")
		if err != nil || len(res.Items) == 0 {
			continue
		}
		lines = append(lines, "", m.styles.title.Render(categoryLabel(c)))
		for _, it := range content.Preview(res.Items, 3) {
			lines = append(lines, m.styles.listItem.Render("• "+it.ItemTitle()))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderAbout() string {
	p := m.profile
	lines := []string{
		m.styles.title.Render("About Me"),
		m.styles.body.Render(p.Story),
	}
	if p.Education.School != "" {
		lines = append(lines, "",
			m.styles.title.Render("Education"),
			p.Education.School+", "+p.Education.Location,
			m.styles.subtle.Render(p.Education.Details),
		)
	}
	if len(p.Journey) > 0 {
		lines = append(lines, "", m.styles.title.Render("Journey"))
		for _, ms := range p.Journey {
			lines = append(lines, m.styles.listItem.Render(ms.Year+"  "+ms.Title), m.styles.listItem.Render(m.styles.subtle.Render(ms.Desc)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderList(st model.ViewState, cat model.Category) string {
	mode := st.Filter(cat)
	featured, recent := m.styles.badge, m.styles.badge
	if mode == model.FilterFeatured {
		featured = m.styles.badgeActive
	} else {
		recent = m.styles.badgeActive
	}

	lines := []string{
		m.styles.title.Render(categoryLabel(cat)) + "  " + featured.Render("f Featured") + recent.Render("r Recent"),
	}
	if cat == model.CategoryBlog {
		switch {
		case m.mode == inputSearch:
			lines = append(lines, m.input.View())
		case st.Search != "":
			lines = append(lines, m.styles.subtle.Render("search: "+st.Search))
		}
	}
	lines = append(lines, "")

	if len(m.items) == 0 {
		lines = append(lines, m.styles.subtle.Render("Nothing to show."))
		return strings.Join(lines, "\n")
	}
	for i, it := range m.items {
		row := it.ItemTitle()
		if d := it.ItemDate(); d != "" {
			row += "  " + m.styles.subtle.Render(d)
		}
		if i == m.cursor {
			lines = append(lines, m.styles.listSel.Render("> "+row))
		} else {
			lines = append(lines, m.styles.listItem.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderDetail(cat model.Category, id string) string {
	item, err := m.content.Get(m.ctx, cat, id)
	if err != nil {
		return m.styles.statusErr.Render(err.Error())
	}

	lines := []string{m.styles.subtle.Render("esc back"), m.styles.title.Render(item.ItemTitle()), m.styles.subtle.Render(item.ItemDate()), ""}
	switch it := item.(type) {
	case model.Project:
		lines = append(lines, m.styles.body.Render(it.FullDescription))
		if it.Journey != "" {
			lines = append(lines, "", m.styles.title.Render("The Journey"), m.styles.body.Render(it.Journey))
		}
		if it.Challenges != "" {
			lines = append(lines, "", m.styles.title.Render("Challenges"), m.styles.body.Render(it.Challenges))
		}
		if len(it.TechStackDetails) > 0 {
			lines = append(lines, "", m.styles.title.Render("Tech Stack"), strings.Join(it.TechStackDetails, ", "))
		}
		for _, link := range []string{it.GithubLink, it.DemoLink} {
			if link != "" {
				lines = append(lines, m.styles.subtle.Render(link))
			}
		}
	case model.Animation:
		lines = append(lines, mediaDetail(m.styles, it.Media)...)
	case model.Edit:
		lines = append(lines, mediaDetail(m.styles, it.Media)...)
	case model.BlogPost:
		lines = append(lines, m.styles.subtle.Render(it.Author+" · "+it.ReadTime), "")
		for _, para := range it.Content {
			lines = append(lines, m.styles.body.Render(para), "")
		}
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

func mediaDetail(s styles, md model.Media) []string {
	lines := []string{s.body.Render(md.Description)}
	if md.VideoURL != "" {
		lines = append(lines, "", s.subtle.Render(md.VideoURL))
	}
	if len(md.Software) > 0 {
		lines = append(lines, "", s.title.Render("Software"), strings.Join(md.Software, ", "))
	}
	return lines
}

func (m *Model) renderContact() string {
	lines := []string{
		m.styles.title.Render("Contact Me"),
		"Email     " + m.profile.Email,
		"Location  " + m.profile.Location,
		"",
	}
	switch {
	case m.mode == inputContact:
		for i, name := range contactFields {
			label := strings.ToUpper(name[:1]) + name[1:]
			if i == m.field {
				lines = append(lines, m.styles.listSel.Render(label), "  "+m.input.View())
			} else {
				lines = append(lines, m.styles.listItem.Render(label+": "+fieldValue(m.form, name)))
			}
		}
	case m.handoff != "":
		lines = append(lines, m.styles.panel.Render(m.handoff))
	default:
		lines = append(lines, m.styles.subtle.Render("Press enter to write a message."))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return m.styles.statusErr.Render(m.err.Error())
	}
	hint := m.styles.hint.Render("1-7 pages · ↑/↓ move · enter open · esc back · f/r filter · / search · q quit")
	if m.status == "" {
		return m.styles.statusBar.Render(hint)
	}
	return m.styles.statusBar.Render(m.status + "\n" + hint)
}

func categoryLabel(c model.Category) string {
	for _, l := range model.Pages() {
		if l.Page == c.Page() {
			return l.Label
		}
	}
	return string(c)
}
