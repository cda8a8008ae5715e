package section

import (
	"sort"
	"time"

	"github.com/tdamianovich/portfolio/internal/content"
)

// MaxItemsDefault is the number of items visible per list (or per group)
// before the disclosure control appears.
const MaxItemsDefault = 3

// Mode selects how a section lays out its items. Pills takes precedence over
// grouped when both flags are set.
type Mode int

const (
	ModeDefault Mode = iota
	ModePills
	ModeGrouped
)

// Options are the render flags for one section instance.
type Options struct {
	Kind    content.SectionKind
	Grouped bool
	Pills   bool
}

// State is the disclosure state of one section instance: a single toggle in
// default mode, one independent toggle per group in grouped mode. A fresh
// State is collapsed.
type State struct {
	MoreVisible bool
	OpenGroups  map[string]bool
}

// Toggle flips the section-level disclosure state.
func (s *State) Toggle() {
	s.MoreVisible = !s.MoreVisible
}

// ToggleGroup flips the disclosure state of one group.
func (s *State) ToggleGroup(title string) {
	if s.OpenGroups == nil {
		s.OpenGroups = map[string]bool{}
	}
	s.OpenGroups[title] = !s.OpenGroups[title]
}

func (s State) groupOpen(title string) bool {
	return s.OpenGroups[title]
}

// ItemView is one rendered record.
type ItemView struct {
	Title       string
	TitleDetail string
	Mode        string
	Subtitle    string
	Content     string
	Link        string
	DateRange   string
	Duration    string
	Date        string
}

// GroupView is one title-partitioned group with its own disclosure state.
type GroupView struct {
	Title    string
	Items    []ItemView
	Total    int
	HasMore  bool
	Expanded bool
}

// View is the render model consumed by the section template. A nil View
// renders nothing.
type View struct {
	Title    string
	Kind     content.SectionKind
	Mode     Mode
	Items    []ItemView
	Groups   []GroupView
	Pills    []string
	Total    int
	HasMore  bool
	Expanded bool
}

// IsPills reports pills mode, for template dispatch.
func (v *View) IsPills() bool { return v.Mode == ModePills }

// IsGrouped reports grouped mode, for template dispatch.
func (v *View) IsGrouped() bool { return v.Mode == ModeGrouped }

// Build shapes a section's items into its view model. Empty input yields nil.
func Build(title string, items []content.Item, opts Options, state State, f *Formatter) *View {
	if len(items) == 0 {
		return nil
	}

	view := &View{Title: title, Kind: opts.Kind, Total: len(items)}

	switch {
	case opts.Pills:
		view.Mode = ModePills
		view.Pills = buildPills(items)
	case opts.Grouped:
		view.Mode = ModeGrouped
		view.Groups = buildGroups(items, state, f)
	default:
		view.Mode = ModeDefault
		view.Expanded = state.MoreVisible
		view.HasMore = len(items) > MaxItemsDefault
		visible := items
		if view.HasMore && !state.MoreVisible {
			visible = items[:MaxItemsDefault]
		}
		for _, item := range visible {
			view.Items = append(view.Items, buildItem(item, opts.Kind, f))
		}
	}
	return view
}

func buildPills(items []content.Item) []string {
	pills := make([]string, 0, len(items))
	for _, item := range items {
		text := item.Title
		if item.TitleDetail != "" {
			text += " - " + item.TitleDetail
		}
		pills = append(pills, text)
	}
	return pills
}

func buildItem(item content.Item, kind content.SectionKind, f *Formatter) ItemView {
	view := ItemView{
		Title:       item.Title,
		TitleDetail: item.TitleDetail,
		Mode:        item.Mode,
		Subtitle:    item.Subtitle,
		Content:     item.Content,
		Link:        item.Link,
	}
	if item.Date == "" {
		return view
	}

	view.DateRange = f.Date(item.Date, false)
	switch {
	case item.EndDate != "":
		view.DateRange += " - " + f.Date(item.EndDate, false)
	case kind.HasDateContext():
		// Ongoing record: the missing end marker renders the present literal.
		view.DateRange += " - " + f.Date("", true)
	}
	if kind.HasDateContext() {
		view.Duration = f.Duration(item.Date, item.EndDate)
	}
	return view
}

// buildGroups partitions items by exact title, keeping group order by first
// occurrence and sorting each group's members by date descending. Dateless
// items sort as the zero time, i.e. last.
func buildGroups(items []content.Item, state State, f *Formatter) []GroupView {
	order := []string{}
	grouped := map[string][]content.Item{}
	for _, item := range items {
		if _, ok := grouped[item.Title]; !ok {
			order = append(order, item.Title)
		}
		grouped[item.Title] = append(grouped[item.Title], item)
	}

	views := make([]GroupView, 0, len(order))
	for _, title := range order {
		members := grouped[title]
		sort.SliceStable(members, func(i, j int) bool {
			return sortDate(members[i]).After(sortDate(members[j]))
		})

		group := GroupView{
			Title:    title,
			Total:    len(members),
			HasMore:  len(members) > MaxItemsDefault,
			Expanded: state.groupOpen(title),
		}
		visible := members
		if group.HasMore && !group.Expanded {
			visible = members[:MaxItemsDefault]
		}
		for _, item := range visible {
			group.Items = append(group.Items, ItemView{
				Title:       item.Title,
				TitleDetail: item.TitleDetail,
				Link:        item.Link,
				Date:        f.Date(item.Date, false),
			})
		}
		views = append(views, group)
	}
	return views
}

func sortDate(item content.Item) time.Time {
	if item.Date == "" {
		return time.Time{}
	}
	t, err := content.ParseDate(item.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
