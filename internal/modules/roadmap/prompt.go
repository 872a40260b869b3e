package roadmap

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/yungbote/aspirepath-backend/internal/domain"
)

// SystemInstruction frames the model as an advisor for learners with
// limited means.
const SystemInstruction = `You are AspirePath, an AI career and education advisor specializing in helping students and young professionals in Ghana and similar contexts.

Your role is to create personalized, actionable roadmaps that consider:
- User's current education level and financial constraints
- Local context and available resources
- Realistic timelines and achievable steps
- Free and affordable learning resources

Always provide practical, step-by-step guidance with specific resources and timelines.`

const noSkillsPlaceholder = "None specified"

const userPromptTemplate = `Create a personalized roadmap for a student/professional with the following profile:

CURRENT SITUATION:
- Education Level: {{.EducationLevel}}
- Financial Status: {{.FinancialStatus}}
- Current Skills: {{.Skills}}
- Location: {{.Location}}

GOALS:
{{range $i, $g := .Goals}}{{if $i}}
{{end}}- {{$g.Title}} ({{$g.Category}}): {{$g.Description}} - Timeline: {{$g.Timeline}}{{end}}

Please create a detailed, step-by-step roadmap that includes:
1. 3-5 specific, actionable steps
2. Estimated duration for each step
3. Recommended resources (courses, videos, communities, tools)
4. Consider financial constraints and local context
5. Focus on free or affordable resources when possible

Format your response as a JSON object with this structure:
{
  "steps": [
    {
      "title": "Step title",
      "description": "Detailed description",
      "estimatedDuration": "2-4 weeks",
      "resources": [
        {
          "title": "Resource name",
          "type": "COURSE|VIDEO|MENTOR|COMMUNITY|TOOL",
          "description": "Resource description",
          "isFree": true,
          "url": "optional_url"
        }
      ]
    }
  ]
}`

var userPrompt = template.Must(template.New("roadmap_user").Option("missingkey=zero").Parse(userPromptTemplate))

type promptInput struct {
	EducationLevel  string
	FinancialStatus string
	Skills          string
	Location        string
	Goals           []domain.Goal
}

// BuildPrompt renders the user prompt for a profile and its goals. It is a
// pure function; callers reject empty goal lists before calling it.
func BuildPrompt(profile domain.UserProfile, goals []domain.Goal) string {
	skills := strings.Join(profile.Skills, ", ")
	if skills == "" {
		skills = noSkillsPlaceholder
	}
	in := promptInput{
		EducationLevel:  string(profile.EducationLevel),
		FinancialStatus: string(profile.FinancialStatus),
		Skills:          skills,
		Location:        profile.Location,
		Goals:           goals,
	}
	var b bytes.Buffer
	_ = userPrompt.Execute(&b, in)
	return b.String()
}
