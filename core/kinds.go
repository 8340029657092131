package core

// OperationKind identifies a category of business capability. Each registered
// operation in the catalog implements exactly one kind, and each kind maps to
// one processor in the dispatcher's lookup table.
type OperationKind string

// The ten operation kinds of the recruitment workflow.
const (
	OpRequirementProfile OperationKind = "requirement_profile"
	OpJobAd              OperationKind = "job_ad"
	OpTAScreening        OperationKind = "ta_screening"
	OpHMScreening        OperationKind = "hm_screening"
	OpHeadhunting        OperationKind = "headhunting"
	OpCandidateReport    OperationKind = "candidate_report"
	OpFunnelReport       OperationKind = "funnel_report"
	OpJobAdReview        OperationKind = "job_ad_review"
	OpDIReview           OperationKind = "di_review"
	OpCalendarInvite     OperationKind = "calendar_invite"
)

// ArtifactKind identifies the type of a stored artifact. At most one artifact
// per (session, kind) is current; a later store overwrites.
type ArtifactKind string

// Artifact kinds produced by the operation kinds above.
const (
	ArtifactRequirementProfile  ArtifactKind = "requirement_profile"
	ArtifactJobAd               ArtifactKind = "job_ad"
	ArtifactTAScreeningTemplate ArtifactKind = "ta_screening_template"
	ArtifactHMScreeningTemplate ArtifactKind = "hm_screening_template"
	ArtifactHeadhuntingMessages ArtifactKind = "headhunting_messages"
	ArtifactCandidateReport     ArtifactKind = "candidate_report"
	ArtifactFunnelReport        ArtifactKind = "funnel_report"
	ArtifactJobAdReview         ArtifactKind = "job_ad_review"
	ArtifactDIReview            ArtifactKind = "di_review"
	ArtifactCalendarInvite      ArtifactKind = "calendar_invite"
)

// Language is an output language tag for a session.
type Language string

// Supported output languages.
const (
	LanguageEnglish   Language = "en"
	LanguageSwedish   Language = "sv"
	LanguageDanish    Language = "da"
	LanguageNorwegian Language = "no"
	LanguageGerman    Language = "de"
)
