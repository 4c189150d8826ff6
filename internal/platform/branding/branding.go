// Package branding holds the owner-facing defaults rendered when the
// settings row leaves a field empty.
package branding

const (
	// AppName is the short site mark rendered in the navigation bar.
	AppName = "MI"
	// OwnerName is the fallback hero and footer name.
	OwnerName = "Mohd Irfan"
	// OwnerTitle is the fallback hero title.
	OwnerTitle = "Full-Stack Developer"
	// AvailabilityStatus is the fallback hero status badge.
	AvailabilityStatus = "Available for work"
	// HeroText is used when neither hero_text nor summary is set.
	HeroText = "Building production software that solves real problems."
	// PortraitURL is the default hero portrait.
	PortraitURL = "https://res.cloudinary.com/dpifyaq7d/image/upload/v1771349685/Mohd_Irfan_bnez9n.jpg"
)
