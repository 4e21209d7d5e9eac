package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	captcha key.Binding
	signup  key.Binding

	search     key.Binding
	typeFilter key.Binding
	sortID     key.Binding
	sortVendor key.Binding
	sortAmount key.Binding
	sortDate   key.Binding
	sortRisk   key.Binding
	copy       key.Binding
	upSales    key.Binding
	upPurchase key.Binding
	view       key.Binding
	download   key.Binding
	report     key.Binding
	profile    key.Binding
	billing    key.Binding
	settings   key.Binding
	logout     key.Binding
	buildInfo  key.Binding
	quit       key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	captcha: key.NewBinding(key.WithKeys("ctrl+t")),
	signup:  key.NewBinding(key.WithKeys("ctrl+n")),

	search:     key.NewBinding(key.WithKeys("/")),
	typeFilter: key.NewBinding(key.WithKeys("t")),
	sortID:     key.NewBinding(key.WithKeys("1")),
	sortVendor: key.NewBinding(key.WithKeys("2")),
	sortAmount: key.NewBinding(key.WithKeys("3")),
	sortDate:   key.NewBinding(key.WithKeys("4")),
	sortRisk:   key.NewBinding(key.WithKeys("5")),
	copy:       key.NewBinding(key.WithKeys("c")),
	upSales:    key.NewBinding(key.WithKeys("u")),
	upPurchase: key.NewBinding(key.WithKeys("U")),
	view:       key.NewBinding(key.WithKeys("v", "enter")),
	download:   key.NewBinding(key.WithKeys("d")),
	report:     key.NewBinding(key.WithKeys("r")),
	profile:    key.NewBinding(key.WithKeys("p")),
	billing:    key.NewBinding(key.WithKeys("b")),
	settings:   key.NewBinding(key.WithKeys("s")),
	logout:     key.NewBinding(key.WithKeys("l")),
	buildInfo:  key.NewBinding(key.WithKeys("f1")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
}
