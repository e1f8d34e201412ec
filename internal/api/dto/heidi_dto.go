package dto

// Request bodies for the Heidi generation endpoints. Personality, platform
// and expertise are optional; the service fills the documented defaults.

type ChatDTO struct {
	Prompt      string `json:"prompt" validate:"required"`
	Personality string `json:"personality"`
}

type AdReadDTO struct {
	SponsorName        string `json:"sponsorName" validate:"required"`
	SponsorDescription string `json:"sponsorDescription"`
	Personality        string `json:"personality"`
}

type ReplyDTO struct {
	Comment     string `json:"comment" validate:"required"`
	Personality string `json:"personality"`
}

type ClipPostDTO struct {
	ClipDescription string `json:"clipDescription" validate:"required"`
	Platform        string `json:"platform"`
}

type SponsorMatchDTO struct {
	CreatorBio   string `json:"creatorBio" validate:"required"`
	AudienceData string `json:"audienceData"`
}

type CourseOutlineDTO struct {
	Topic     string `json:"topic" validate:"required"`
	Expertise string `json:"expertise"`
}
