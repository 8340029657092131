// Package modules assembles the complete operation set: descriptors with
// their parameter schemas, the processors behind them, and the artifact
// decoders for persisted state. The set is closed data; adding an operation
// means editing this file.
package modules

import (
	"fmt"

	"github.com/talentahq/talenta/artifact"
	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dependency"
	"github.com/talentahq/talenta/dispatch"
	"github.com/talentahq/talenta/modules/calendar"
	"github.com/talentahq/talenta/modules/headhunting"
	"github.com/talentahq/talenta/modules/jobad"
	"github.com/talentahq/talenta/modules/profile"
	"github.com/talentahq/talenta/modules/report"
	"github.com/talentahq/talenta/modules/review"
	"github.com/talentahq/talenta/modules/screening"
)

// Registration pairs one operation descriptor with its processor.
type Registration struct {
	Descriptor catalog.Descriptor
	Processor  dispatch.Processor
}

// Defaults returns the full operation set in its canonical order.
func Defaults() []Registration {
	return []Registration{
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_requirement_profile",
				Description: "Create a requirement profile for a position from startup meeting notes. This is the foundation for job ads, screening templates, headhunting messages and candidate reports.",
				Kind:        core.OpRequirementProfile,
				Produces:    core.ArtifactRequirementProfile,
				Parameters: objectSchema(map[string]any{
					"position_title":       stringProp("The job title for the position"),
					"startup_notes":        stringProp("Notes from the recruitment startup meeting"),
					"old_job_ad":           stringProp("A previous job ad for the role, if available"),
					"hiring_manager_input": stringProp("Direct input from the hiring manager, if available"),
				}, "position_title", "startup_notes"),
			},
			Processor: profile.NewProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_job_ad",
				Description: "Create a job advertisement from the stored requirement profile. Requires the requirement profile to be created first.",
				Kind:        core.OpJobAd,
				Requires:    []core.ArtifactKind{core.ArtifactRequirementProfile},
				Produces:    core.ArtifactJobAd,
				Parameters: objectSchema(map[string]any{
					"company_context": stringProp("Context about the company and team for the ad"),
					"location":        stringProp("Where the position is based"),
					"apply_by":        stringProp("Application deadline, if any"),
				}),
			},
			Processor: jobad.NewProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_ta_screening_template",
				Description: "Create a talent acquisition phone screening template. Requires the requirement profile to be created first.",
				Kind:        core.OpTAScreening,
				Requires:    []core.ArtifactKind{core.ArtifactRequirementProfile},
				Produces:    core.ArtifactTAScreeningTemplate,
				Parameters: objectSchema(map[string]any{
					"focus": stringProp("Optional focus area for the screening"),
				}),
			},
			Processor: screening.NewProcessor(screening.VariantTA),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_hm_screening_template",
				Description: "Create a hiring manager interview template with deeper skill questions. Requires the requirement profile to be created first.",
				Kind:        core.OpHMScreening,
				Requires:    []core.ArtifactKind{core.ArtifactRequirementProfile},
				Produces:    core.ArtifactHMScreeningTemplate,
				Parameters: objectSchema(map[string]any{
					"focus": stringProp("Optional focus area for the interview"),
				}),
			},
			Processor: screening.NewProcessor(screening.VariantHM),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_headhunting_messages",
				Description: "Create three LinkedIn outreach message versions for the position. Requires the requirement profile to be created first. Uses the job ad for extra context when one exists.",
				Kind:        core.OpHeadhunting,
				Requires:    []core.ArtifactKind{core.ArtifactRequirementProfile},
				Optional:    []core.ArtifactKind{core.ArtifactJobAd},
				Produces:    core.ArtifactHeadhuntingMessages,
				Parameters: objectSchema(map[string]any{
					"recruiter_name": stringProp("Name of the recruiter signing the messages"),
					"company_name":   stringProp("Company name to mention in the messages"),
				}, "recruiter_name"),
			},
			Processor: headhunting.NewProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_candidate_report",
				Description: "Create a candidate report with per-skill ratings after a screening call. Requires the requirement profile and the TA screening template to be created first.",
				Kind:        core.OpCandidateReport,
				Requires:    []core.ArtifactKind{core.ArtifactRequirementProfile, core.ArtifactTAScreeningTemplate},
				Produces:    core.ArtifactCandidateReport,
				Parameters: objectSchema(map[string]any{
					"candidate_name": stringProp("The candidate's name"),
					"transcript":     stringProp("Notes or transcript from the screening call"),
					"ratings": map[string]any{
						"type":        "object",
						"description": "Optional explicit 1-5 ratings per must-have skill",
						"additionalProperties": map[string]any{
							"type": "integer",
						},
					},
					"motivation_rating":  integerProp("Optional 1-5 rating of the candidate's motivation"),
					"notice_period":      stringProp("The candidate's notice period"),
					"salary_expectation": stringProp("The candidate's salary expectation"),
				}, "candidate_name", "transcript"),
			},
			Processor: report.NewCandidateProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_funnel_report",
				Description: "Create a recruitment funnel report with conversion rates and bottlenecks from pipeline stage counts.",
				Kind:        core.OpFunnelReport,
				Produces:    core.ArtifactFunnelReport,
				Parameters: objectSchema(map[string]any{
					"position_title": stringProp("The position the funnel belongs to"),
					"stages": map[string]any{
						"type":        "array",
						"description": "Ordered pipeline stages, widest first",
						"items": objectSchema(map[string]any{
							"name":          stringProp("Stage name"),
							"count":         integerProp("Candidates at this stage"),
							"days_in_stage": integerProp("Days spent in this stage"),
						}, "name", "count"),
					},
					"notes": stringProp("Free-form notes about the pipeline"),
				}, "position_title", "stages"),
			},
			Processor: report.NewFunnelProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "review_job_ad",
				Description: "Review a job ad for structure, content quality and language compliance, with a scorecard and recommendations.",
				Kind:        core.OpJobAdReview,
				Produces:    core.ArtifactJobAdReview,
				Parameters: objectSchema(map[string]any{
					"job_ad_text": stringProp("The full job ad text to review"),
					"language":    languageProp(),
				}, "job_ad_text"),
			},
			Processor: review.NewJobAdProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "review_di_compliance",
				Description: "Check a job ad for biased or exclusionary language and suggest inclusive alternatives. The original text is never changed.",
				Kind:        core.OpDIReview,
				Produces:    core.ArtifactDIReview,
				Parameters: objectSchema(map[string]any{
					"job_ad_text": stringProp("The full job ad text to check"),
					"language":    languageProp(),
				}, "job_ad_text"),
			},
			Processor: review.NewDIProcessor(),
		},
		{
			Descriptor: catalog.Descriptor{
				Name:        "create_calendar_invite",
				Description: "Create a calendar invitation for an interview, on Teams or at one of the offices.",
				Kind:        core.OpCalendarInvite,
				Produces:    core.ArtifactCalendarInvite,
				Parameters: objectSchema(map[string]any{
					"position_name":       stringProp("The position being interviewed for"),
					"hiring_manager_name": stringProp("Name of the hiring manager"),
					"recruiter_name":      stringProp("Name of the recruiter sending the invite"),
					"location_type":       enumProp("Where the interview happens", "teams", "onsite"),
					"interview_type":      enumProp("The kind of interview", "ta_screening", "hiring_manager", "case", "team"),
					"duration_minutes":    integerProp("Interview duration in minutes"),
					"city":                enumProp("Office city, required for on-site interviews", "stockholm", "copenhagen", "oslo"),
					"date_time":           stringProp("When the interview takes place, for manual booking"),
					"agenda":              stringProp("Optional custom agenda"),
				}, "position_name", "hiring_manager_name", "recruiter_name", "location_type", "interview_type", "duration_minutes"),
			},
			Processor: calendar.NewProcessor(),
		},
	}
}

// Wire registers the default operation set into the catalog, graph and
// dispatcher. Any registration failure is a startup configuration error.
func Wire(cat *catalog.Catalog, graph *dependency.Graph, d *dispatch.Dispatcher) error {
	for _, reg := range Defaults() {
		if err := cat.Register(reg.Descriptor); err != nil {
			return fmt.Errorf("modules: register %s: %w", reg.Descriptor.Name, err)
		}
		graph.Declare(reg.Descriptor.Kind, reg.Descriptor.Requires...)
		if err := d.RegisterProcessor(reg.Descriptor.Kind, reg.Processor); err != nil {
			return fmt.Errorf("modules: register %s: %w", reg.Descriptor.Name, err)
		}
	}
	return nil
}

// Codec returns an artifact codec covering every artifact kind the default
// operation set produces.
func Codec() (*artifact.Codec, error) {
	c := artifact.NewCodec()
	for kind, newFn := range map[core.ArtifactKind]func() core.Artifact{
		core.ArtifactRequirementProfile:  func() core.Artifact { return &profile.Profile{} },
		core.ArtifactJobAd:               func() core.Artifact { return &jobad.Ad{} },
		core.ArtifactTAScreeningTemplate: func() core.Artifact { return &screening.Template{Variant: screening.VariantTA} },
		core.ArtifactHMScreeningTemplate: func() core.Artifact { return &screening.Template{Variant: screening.VariantHM} },
		core.ArtifactHeadhuntingMessages: func() core.Artifact { return &headhunting.Messages{} },
		core.ArtifactCandidateReport:     func() core.Artifact { return &report.CandidateReport{} },
		core.ArtifactFunnelReport:        func() core.Artifact { return &report.FunnelReport{} },
		core.ArtifactJobAdReview:         func() core.Artifact { return &review.JobAdReview{} },
		core.ArtifactDIReview:            func() core.Artifact { return &review.DIReview{} },
		core.ArtifactCalendarInvite:      func() core.Artifact { return &calendar.Invite{} },
	} {
		if err := c.RegisterJSON(kind, newFn); err != nil {
			return nil, fmt.Errorf("modules: codec: %w", err)
		}
	}
	return c, nil
}

// objectSchema builds a JSON schema object with the given properties and
// required names.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func integerProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func enumProp(description string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": description, "enum": values}
}

func languageProp() map[string]any {
	return enumProp("Language of the text", "en", "sv", "da", "no", "de")
}
