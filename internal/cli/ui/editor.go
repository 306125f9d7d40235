package ui

import (
	"fmt"
	"strings"

	"acconsole/internal/console"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName        = "name"
	fieldContent     = "content"
	fieldSendTime    = "sendTime"
	fieldPriority    = "priority"
	fieldDescription = "description"
	fieldUUID        = "uuid"
	fieldPlayerName  = "playerName"

	itemMaterial   = "material"
	itemAmount     = "amount"
	itemCustomName = "customName"
	itemLore       = "lore"
)

// field is one editable control. Color-capable fields accept alt+<code>.
type field struct {
	key       string
	label     string
	color     bool
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func newInput(key, label, value, placeholder string, color bool) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = 48
	ti.SetValue(value)
	return field{key: key, label: label, color: color, input: ti}
}

func newArea(key, label, value, placeholder string, color bool) field {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(52)
	ta.SetHeight(4)
	ta.SetValue(value)
	return field{key: key, label: label, color: color, multiline: true, area: ta}
}

func (f field) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f field) view() string {
	if f.multiline {
		return f.area.View()
	}
	return f.input.View()
}

// insertColor writes token at the caret. Text areas insert in place so
// their scroll position is kept.
func (f *field) insertColor(token string) bool {
	if !f.color {
		return false
	}
	if f.multiline {
		f.area.InsertString(token)
		return true
	}
	pos := f.input.Position()
	text, caret := console.Insert(f.input.Value(), pos, pos, token)
	f.input.SetValue(text)
	f.input.SetCursor(caret)
	return true
}

func itemKey(rowID, part string) string {
	return "item:" + rowID + ":" + part
}

func parseItemKey(key string) (rowID, part string, ok bool) {
	rest, found := strings.CutPrefix(key, "item:")
	if !found {
		return "", "", false
	}
	i := strings.LastIndex(rest, ":")
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

// editor is the modal form for one entity.
type editor struct {
	module console.Module
	title  string
	id     string
	fields []field
	focus  int
	items  *console.ItemEditor
}

func newAnnouncementEditor(form console.AnnouncementForm) editor {
	return editor{
		module: console.ModuleAnnouncement,
		title:  form.Title(),
		id:     form.ID,
		fields: []field{
			newInput(fieldName, "公告名称", form.Name, "", true),
			newArea(fieldContent, "公告内容", form.Content, "支持 & 颜色代码", true),
			newInput(fieldSendTime, "发送时间", form.SendTime, "YYYY-MM-DDTHH:MM，留空立即发送", false),
			newInput(fieldPriority, "优先级", form.Priority, "0", false),
		},
	}
}

func newCompensationEditor(form console.CompensationForm) editor {
	items := form.Items
	if items == nil {
		items = console.NewItemEditor()
	}
	e := editor{
		module: console.ModuleCompensation,
		title:  form.Title(),
		id:     form.ID,
		items:  items,
	}
	e.fields = e.compensationFields(form.Name, form.Description)
	return e
}

func newWhitelistEditor() editor {
	return editor{
		module: console.ModuleWhitelist,
		title:  "添加白名单",
		fields: []field{
			newInput(fieldUUID, "玩家UUID", "", "", false),
			newInput(fieldPlayerName, "玩家名称", "", "", false),
		},
	}
}

func (e editor) compensationFields(name, description string) []field {
	fields := []field{
		newInput(fieldName, "补偿名称", name, "", true),
		newArea(fieldDescription, "补偿说明", description, "支持 & 颜色代码", true),
	}
	for _, r := range e.items.Rows() {
		fields = append(fields,
			newInput(itemKey(r.ID, itemMaterial), "材质", r.Material, "DIAMOND", false),
			newInput(itemKey(r.ID, itemAmount), "数量", r.Amount, "1", false),
			newInput(itemKey(r.ID, itemCustomName), "自定义名称", r.CustomName, "", true),
			newArea(itemKey(r.ID, itemLore), "描述(每行一条)", r.Lore, "", true),
		)
	}
	return fields
}

func (e editor) value(key string) string {
	for _, f := range e.fields {
		if f.key == key {
			return f.value()
		}
	}
	return ""
}

// syncItems copies item field values back into the item editor.
func (e editor) syncItems() {
	if e.items == nil {
		return
	}
	for _, r := range e.items.Rows() {
		r.Material = e.value(itemKey(r.ID, itemMaterial))
		r.Amount = e.value(itemKey(r.ID, itemAmount))
		r.CustomName = e.value(itemKey(r.ID, itemCustomName))
		r.Lore = e.value(itemKey(r.ID, itemLore))
		e.items.Update(r)
	}
}

func (e editor) announcementForm() console.AnnouncementForm {
	return console.AnnouncementForm{
		ID:       e.id,
		Name:     e.value(fieldName),
		Content:  e.value(fieldContent),
		SendTime: e.value(fieldSendTime),
		Priority: e.value(fieldPriority),
	}
}

// compensationForm returns a snapshot detached from the live editor.
func (e editor) compensationForm() console.CompensationForm {
	e.syncItems()
	snapshot := console.NewItemEditor()
	for _, r := range e.items.Rows() {
		snapshot.Add(r.Material, r.Amount, r.CustomName, r.Lore)
	}
	return console.CompensationForm{
		ID:          e.id,
		Name:        e.value(fieldName),
		Description: e.value(fieldDescription),
		Items:       snapshot,
	}
}

func (e editor) whitelistForm() console.WhitelistForm {
	return console.WhitelistForm{UUID: e.value(fieldUUID), Name: e.value(fieldPlayerName)}
}

func (e *editor) setFocus(i int) tea.Cmd {
	if len(e.fields) == 0 {
		return nil
	}
	if i < 0 {
		i = len(e.fields) - 1
	}
	if i >= len(e.fields) {
		i = 0
	}
	for j := range e.fields {
		e.fields[j].blur()
	}
	e.focus = i
	return e.fields[i].focus()
}

func (e *editor) addItem() tea.Cmd {
	if e.items == nil {
		return nil
	}
	e.syncItems()
	name, desc := e.value(fieldName), e.value(fieldDescription)
	id := e.items.Add("", "", "", "")
	e.fields = e.compensationFields(name, desc)
	return e.setFocus(e.indexOf(itemKey(id, itemMaterial)))
}

// removeItem drops the item row that holds focus.
func (e *editor) removeItem() tea.Cmd {
	if e.items == nil || e.focus >= len(e.fields) {
		return nil
	}
	rowID, _, ok := parseItemKey(e.fields[e.focus].key)
	if !ok {
		return nil
	}
	e.syncItems()
	name, desc := e.value(fieldName), e.value(fieldDescription)
	e.items.Remove(rowID)
	focus := e.focus
	e.fields = e.compensationFields(name, desc)
	if focus >= len(e.fields) {
		focus = len(e.fields) - 1
	}
	return e.setFocus(focus)
}

func (e editor) indexOf(key string) int {
	for i, f := range e.fields {
		if f.key == key {
			return i
		}
	}
	return 0
}

func (e editor) Update(msg tea.Msg) (editor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			return e, e.setFocus(e.focus + 1)
		case "shift+tab":
			return e, e.setFocus(e.focus - 1)
		case "ctrl+n":
			return e, e.addItem()
		case "ctrl+x":
			return e, e.removeItem()
		case "enter":
			if len(e.fields) > 0 && !e.fields[e.focus].multiline {
				return e, e.setFocus(e.focus + 1)
			}
		}

		if key.Alt && len(key.Runes) == 1 {
			if c, ok := console.LookupColor(key.Runes[0]); ok {
				if len(e.fields) > 0 {
					e.fields[e.focus].insertColor(c.Token())
				}
				return e, nil
			}
		}
	}

	if len(e.fields) == 0 {
		return e, nil
	}
	var cmd tea.Cmd
	f := &e.fields[e.focus]
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return e, cmd
}

func (e editor) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.title))
	b.WriteString("\n\n")

	labels := map[string]string{}
	if e.items != nil {
		for i, r := range e.items.Rows() {
			labels[r.ID] = console.ItemLabel(i)
		}
	}

	lastRow := ""
	for i, f := range e.fields {
		if rowID, _, ok := parseItemKey(f.key); ok && rowID != lastRow {
			lastRow = rowID
			b.WriteString(keyStyle.Render("── "+labels[rowID]+" ──") + "\n")
		}
		style := labelStyle
		if i == e.focus {
			style = focusedLabelStyle
		}
		label := f.label
		if f.color {
			label += descStyle.Render(" (&)")
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(f.view() + "\n\n")
	}

	if e.module == console.ModuleCompensation && e.items.Len() == 0 {
		b.WriteString(descStyle.Render("尚未添加物品，按 ctrl+n 添加") + "\n\n")
	}

	if len(e.fields) > 0 && e.fields[e.focus].color {
		b.WriteString(paletteView() + "\n")
	}

	help := []string{"tab", "next", "ctrl+s", "save", "esc", "cancel"}
	if e.module == console.ModuleCompensation {
		help = append(help, "ctrl+n", "add item", "ctrl+x", "remove item")
	}
	b.WriteString(keyHelp(help...))
	return b.String()
}

var paletteColors = map[rune]string{
	'0': "0", '1': "19", '2': "28", '3': "37", '4': "124", '5': "127",
	'6': "214", '7': "250", '8': "240", '9': "63", 'a': "83", 'b': "87",
	'c': "203", 'd': "213", 'e': "227", 'f': "231",
}

func paletteView() string {
	parts := make([]string, 0, len(console.Palette))
	for _, c := range console.Palette {
		style := lipgloss.NewStyle()
		if col, ok := paletteColors[c.Code]; ok {
			style = style.Foreground(lipgloss.Color(col))
		}
		parts = append(parts, style.Render(fmt.Sprintf("%c", c.Code)))
	}
	return descStyle.Render("alt+") + strings.Join(parts, " ")
}
