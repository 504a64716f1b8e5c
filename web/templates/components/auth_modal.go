package components

import (
	"context"

	"ticketvue/internal/models"
	"ticketvue/internal/store"

	"github.com/a-h/templ"
)

// AuthModal is the local sign in dialog. It renders nothing while closed.
func AuthModal(state store.State) templ.Component {
	return Func(func(ctx context.Context, b *Builder) {
		if !state.AuthModalOpen {
			return
		}

		signup := state.AuthMode == models.AuthModeSignup
		title, submit, switchLabel, switchMode := "Sign in", "Sign in", "Need an account? Sign up", models.AuthModeSignup
		if signup {
			title, submit, switchLabel, switchMode = "Create account", "Sign up", "Already registered? Sign in", models.AuthModeLogin
		}

		b.Raw(`<div class="modal" role="dialog" aria-modal="true"><div class="card"><h2>`)
		b.Text(title)
		b.Raw(`</h2>`)

		b.FormOpen(ctx, "/auth/submit", AppTarget)
		if signup {
			b.Input("Name", "name", "text", "", nil)
		}
		b.Input("Email", models.FieldEmail, "email", "", state.AuthErrors)
		b.Input("Password", "password", "password", "", nil)
		b.Raw(`<button type="submit" class="btn">`)
		b.Text(submit)
		b.Raw(`</button></form>`)

		b.FormOpen(ctx, "/auth/mode", AppTarget)
		b.Raw(`<input type="hidden" name="mode"`)
		b.Attr("value", string(switchMode))
		b.Raw(`><button type="submit" class="btn-link">`)
		b.Text(switchLabel)
		b.Raw(`</button></form>`)

		b.ActionButton(ctx, "/auth/close", AppTarget, "Close", "btn-link", false)
		b.Raw(`</div></div>`)
	})
}
