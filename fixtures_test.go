package rafters

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// widgetCard is a component with settings, attributes and a Current read.
type widgetCard struct {
	*Component[*widgetCard]
	subtitleCalls int
}

var widgetCardDef = Define[*widgetCard]().
	Setting("color", SettingOptions{Default: "red", Accepts: []any{"red", "blue"}}).
	Setting("title", SettingOptions{Required: true}).
	Setting("size", SettingOptions{Default: 2}).
	Attributes(
		Attr("title", (*widgetCard).title),
		Attr("subtitle", (*widgetCard).subtitle),
	)

func newWidgetCard(s Settings) *widgetCard {
	c := &widgetCard{}
	c.Component = widgetCardDef.New(c, s)
	return c
}

func (c *widgetCard) title() (any, error) {
	return c.Setting("title")
}

func (c *widgetCard) subtitle() (any, error) {
	c.subtitleCalls++
	color, err := c.Setting("color")
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("a %v card", color), nil
}

// bare declares nothing.
type bare struct {
	*Component[*bare]
}

var bareDef = Define[*bare]()

func newBare(s Settings) *bare {
	b := &bare{}
	b.Component = bareDef.New(b, s)
	return b
}

// greeter reads the current user from its controller.
type greeter struct {
	*Component[*greeter]
}

var greeterDef = Define[*greeter]().
	Named("admin.Greeter").
	Attribute("user", func(g *greeter) (any, error) { return g.Current("current_user") })

func newGreeter(ctrl Controller) *greeter {
	g := &greeter{}
	g.Component = greeterDef.New(g, nil)
	g.SetController(ctrl)
	return g
}

// textView renders "<template>:<attr>=<value>;..." for assertions.
func textView(name string) ViewFunc {
	return func(a *Attributes) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, name+":"); err != nil {
				return err
			}
			for k, v := range a.All() {
				if _, err := fmt.Fprintf(w, "%s=%v;", k, v); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
