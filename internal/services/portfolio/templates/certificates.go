package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// CertificateSkillLimit caps the skill chips shown on a certificate card.
const CertificateSkillLimit = 3

// CertificatesView is the data the certificates page renders. Selected is
// rendered as an open dialog.
type CertificatesView struct {
	Certificates []content.Certificate
	Selected     *content.Certificate
}

// Certificates renders the certificate grid and, when selected, its detail
// dialog.
func Certificates(loc Localizer, view CertificatesView) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<section class="page-header"><h1>`)
		h.text(tr(loc, "certificates.title"))
		h.raw(`</h1><p class="lead">`)
		h.text(tr(loc, "certificates.lead"))
		h.raw(`</p></section>`)

		if len(view.Certificates) == 0 {
			h.raw(`<p class="empty-state">`)
			h.text(tr(loc, "certificates.empty"))
			h.raw(`</p>`)
			return
		}
		h.raw(`<div class="certificate-grid">`)
		for _, cert := range view.Certificates {
			h.render(ctx, certificateCard(loc, cert))
		}
		h.raw(`</div>`)
		for _, cert := range view.Certificates {
			open := view.Selected != nil && view.Selected.ID == cert.ID
			h.render(ctx, CertificateDialog(loc, cert, open))
		}
	})
}

func certificateCard(loc Localizer, cert content.Certificate) templ.Component {
	return component(func(_ context.Context, h *writer) {
		id := cert.ID.String()
		h.raw(`<article class="certificate-card reveal"><a class="certificate-link"`)
		h.href("href", routepath.Certificate(id))
		h.attr("data-dialog", certificateDialogID(id))
		h.raw(`>`)
		if cert.ImageURL != "" {
			h.raw(`<img loading="lazy"`)
			h.href("src", cert.ImageURL)
			h.attr("alt", cert.Title)
			h.raw(`>`)
		}
		h.raw(`<h3>`)
		h.text(cert.Title)
		h.raw(`</h3><p class="issuer">`)
		h.text(cert.Issuer)
		if date := MonthYear(loc, cert.IssueDate); date != "" {
			h.raw(` · <time`)
			h.attr("datetime", cert.IssueDate.Format("2006-01-02"))
			h.raw(`>`)
			h.text(date)
			h.raw(`</time>`)
		}
		h.raw(`</p></a>`)
		renderChips(h, loc, cert.Skills, CertificateSkillLimit, "skills")
		h.raw(`</article>`)
	})
}

// CertificateDialog renders the full certificate details in a dialog
// element.
func CertificateDialog(loc Localizer, cert content.Certificate, open bool) templ.Component {
	return component(func(_ context.Context, h *writer) {
		id := cert.ID.String()
		h.raw(`<dialog class="certificate-dialog"`)
		h.attr("id", certificateDialogID(id))
		if open {
			h.raw(` open`)
		}
		h.raw(`><article>`)
		if cert.ImageURL != "" {
			h.raw(`<img`)
			h.href("src", cert.ImageURL)
			h.attr("alt", cert.Title)
			h.raw(`>`)
		}
		h.raw(`<h2>`)
		h.text(cert.Title)
		h.raw(`</h2><p class="issuer">`)
		h.text(cert.Issuer)
		if date := LongMonthYear(loc, cert.IssueDate); date != "" {
			h.raw(` · `)
			h.text(date)
		}
		h.raw(`</p>`)
		if cert.CredentialID != "" {
			h.raw(`<p class="credential">`)
			h.text(tr(loc, "certificates.credential", cert.CredentialID))
			h.raw(`</p>`)
		}
		renderChips(h, loc, cert.Skills, 0, "skills")
		h.raw(`<div class="actions">`)
		if cert.VerifyURL != "" {
			h.raw(`<a class="button button-primary" target="_blank" rel="noopener noreferrer"`)
			h.href("href", cert.VerifyURL)
			h.raw(`>`)
			h.text(tr(loc, "certificates.verify"))
			h.raw(`</a>`)
		}
		h.raw(`<a class="button" data-dialog-close`)
		h.href("href", routepath.Certificates)
		h.raw(`>`)
		h.text(tr(loc, "certificates.close"))
		h.raw(`</a></div></article></dialog>`)
	})
}

func certificateDialogID(id string) string {
	return "certificate-" + id
}
