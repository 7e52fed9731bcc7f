package govuk

import (
	"errors"
	"net/http"
)

// ModelStateCookie is the name of the one-time cookie carrying model state
// across a post/redirect/get cycle.
const ModelStateCookie = "govuk_model_state"

// Save stores state in a short-lived cookie. A valid state with no values
// clears any pending cookie instead.
//
//	if !state.IsValid() {
//	    codec.Save(w, state)
//	    http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
//	    return
//	}
func (c *StateCodec) Save(w http.ResponseWriter, state *ModelState) error {
	if state.IsValid() && (state == nil || len(state.Values) == 0) {
		clearStateCookie(w)
		return nil
	}
	encoded, err := c.Encode(state)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ModelStateCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load reads and consumes the model state cookie. A missing cookie yields an
// empty state. A cookie that fails verification is cleared and reported.
func (c *StateCodec) Load(w http.ResponseWriter, r *http.Request) (*ModelState, error) {
	cookie, err := r.Cookie(ModelStateCookie)
	if errors.Is(err, http.ErrNoCookie) {
		return NewModelState(), nil
	}
	if err != nil {
		return NewModelState(), err
	}

	clearStateCookie(w)

	state, err := c.Decode(cookie.Value)
	if err != nil {
		return NewModelState(), err
	}
	return state, nil
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     ModelStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
