package ui

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertDanger  AlertType = "danger"
)

type Alert struct {
	Base

	kind AlertType
	text string
}

type AlertView struct {
	Type   AlertType `json:"type,omitempty"`
	Text   string    `json:"text,omitempty"`
	Hidden bool      `json:"hidden"`
}

func NewAlert() *Alert {
	a := &Alert{}
	a.Hide()
	return a
}

func (a *Alert) Render(kind AlertType, text string) {
	a.kind, a.text = kind, text
	a.Show()
}

func (a *Alert) View() any {
	return AlertView{Type: a.kind, Text: a.text, Hidden: a.Hidden()}
}
