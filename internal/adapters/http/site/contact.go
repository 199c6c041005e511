package site

import (
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// AckMessage is shown after an accepted contact submission.
const AckMessage = "Thank you for your message! I will get back to you soon."

// maxFieldLen caps each field in characters.
const maxFieldLen = 5000

// maxFormBytes fits four full fields of 4-byte runes percent-encoded as
// 12 bytes each, plus names and separators.
const maxFormBytes = 4*maxFieldLen*12 + 1<<10

type contactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// contactView is the contact form as rendered.
type contactView struct {
	Form      contactForm
	Errors    map[string]string
	Ack       string
	Reference string
}

func readContactForm(r *http.Request) (contactForm, error) {
	if err := r.ParseForm(); err != nil {
		return contactForm{}, err
	}
	return contactForm{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Subject: strings.TrimSpace(r.PostForm.Get("subject")),
		Message: strings.TrimSpace(r.PostForm.Get("message")),
	}, nil
}

// validate returns field errors keyed by input name; empty means valid.
func (f contactForm) validate() map[string]string {
	errs := map[string]string{}
	required := []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
	for _, field := range required {
		switch {
		case field.value == "":
			errs[field.name] = "This field is required."
		case utf8.RuneCountInString(field.value) > maxFieldLen:
			errs[field.name] = "This field is too long."
		}
	}
	if _, ok := errs["email"]; !ok {
		if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
			errs["email"] = "Please enter a valid email address."
		}
	}
	return errs
}
