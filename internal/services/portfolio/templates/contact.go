package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// ContactView is the data the contact form renders. Input holds submitted
// values when the form is re-rendered after a failure.
type ContactView struct {
	Input   content.ContactInput
	Errors  content.FieldErrors
	Failure string
}

type contactField struct {
	name        string
	kind        string
	label       string
	placeholder string
	max         int
}

var contactFields = []contactField{
	{name: content.FieldName, kind: "text", label: "contact.name", placeholder: "contact.placeholder.name", max: content.NameMaxLength},
	{name: content.FieldEmail, kind: "email", label: "contact.email", placeholder: "contact.placeholder.email", max: content.EmailMaxLength},
	{name: content.FieldMessage, kind: "textarea", label: "contact.message", placeholder: "contact.placeholder.message", max: content.MessageMaxLength},
}

// FieldMessage localizes a validation failure.
func FieldMessage(loc Localizer, fieldErr content.FieldError) string {
	if fieldErr.Key == "" {
		return fieldErr.Message
	}
	if fieldErr.Limit > 0 {
		return tr(loc, fieldErr.Key, itoa(fieldErr.Limit))
	}
	return tr(loc, fieldErr.Key)
}

// Contact renders the contact form with any field errors.
func Contact(loc Localizer, view ContactView) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<section class="page-header"><h1>`)
		h.text(tr(loc, "contact.title"))
		h.raw(`</h1><p class="lead">`)
		h.text(tr(loc, "contact.lead"))
		h.raw(`</p></section>`)
		if view.Failure != "" {
			h.render(ctx, Toast(Notice{Kind: "error", Message: view.Failure}))
		}
		h.raw(`<form class="contact-form" method="post" novalidate`)
		h.href("action", routepath.Contact)
		h.attr("data-submitting-label", tr(loc, "contact.sending"))
		h.raw(`>`)
		for _, field := range contactFields {
			renderContactField(h, loc, field, fieldValue(view.Input, field.name), view.Errors)
		}
		h.raw(`<div class="honeypot" aria-hidden="true"><label>Website <input type="text" tabindex="-1" autocomplete="off"`)
		h.attr("name", content.HoneypotField)
		h.raw(`></label></div><button type="submit" class="button button-primary">`)
		h.text(tr(loc, "contact.submit"))
		h.raw(`</button></form>`)
	})
}

func renderContactField(h *writer, loc Localizer, field contactField, value string, errs content.FieldErrors) {
	id := "contact-" + field.name
	fieldErr, invalid := errs[field.name]
	h.raw(`<div class="field"><label`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(tr(loc, field.label))
	h.raw(`</label>`)
	if field.kind == "textarea" {
		h.raw(`<textarea rows="6"`)
	} else {
		h.raw(`<input`)
		h.attr("type", field.kind)
	}
	h.attr("id", id)
	h.attr("name", field.name)
	h.attr("maxlength", itoa(field.max))
	h.attr("placeholder", tr(loc, field.placeholder))
	h.raw(` required`)
	if invalid {
		h.raw(` aria-invalid="true"`)
		h.attr("aria-describedby", id+"-error")
	}
	if field.kind == "textarea" {
		h.raw(`>`)
		h.text(value)
		h.raw(`</textarea>`)
	} else {
		h.attr("value", value)
		h.raw(`>`)
	}
	if invalid {
		h.raw(`<p class="field-error"`)
		h.attr("id", id+"-error")
		h.raw(`>`)
		h.text(FieldMessage(loc, fieldErr))
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}

func fieldValue(in content.ContactInput, name string) string {
	switch name {
	case content.FieldName:
		return in.Name
	case content.FieldEmail:
		return in.Email
	case content.FieldMessage:
		return in.Message
	}
	return ""
}
