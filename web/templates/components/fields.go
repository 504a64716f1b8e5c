package components

import (
	"ticketvue/internal/models"

	"github.com/shopspring/decimal"
)

// Input renders a labelled input with its inline validation error
func (b *Builder) Input(label, name, inputType, value string, errs models.ValidationErrors, extra ...string) {
	b.Raw(`<label>`)
	b.Text(label)
	b.Raw(`<input`)
	b.Attr("type", inputType)
	b.Attr("name", name)
	b.Attr("value", value)
	for i := 0; i+1 < len(extra); i += 2 {
		b.Attr(extra[i], extra[i+1])
	}
	b.Raw(`></label>`)
	if errs.Has(name) {
		b.Raw(`<p class="field-error">`)
		b.Text(errs.Message(name))
		b.Raw(`</p>`)
	}
}

// Money renders an amount with two decimals and the currency sign
func (b *Builder) Money(amount decimal.Decimal) {
	b.Raw(`$`)
	b.Text(models.FormatMoney(amount))
}
