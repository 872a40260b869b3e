package roadmap

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/yungbote/aspirepath-backend/internal/domain"
	"github.com/yungbote/aspirepath-backend/internal/platform/logger"
)

const (
	anonymousUserID  = "temp"
	completionMonths = 6
)

type replyStep struct {
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	EstimatedDuration string         `json:"estimatedDuration"`
	Resources         replyResources `json:"resources"`
}

// replyResources decodes leniently: a resource field of the wrong type is
// left zero and items that are not objects are dropped, so one sloppy
// resource never discards its step.
type replyResources []domain.Resource

func (rr *replyResources) UnmarshalJSON(b []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		*rr = replyResources{}
		return nil
	}
	out := make(replyResources, 0, len(items))
	for _, item := range items {
		if res, ok := decodeResource(item); ok {
			out = append(out, res)
		}
	}
	*rr = out
	return nil
}

func decodeResource(raw json.RawMessage) (domain.Resource, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.Resource{}, false
	}
	return domain.Resource{
		ID:          stringField(fields, "id"),
		Title:       stringField(fields, "title"),
		Type:        domain.ResourceType(stringField(fields, "type")),
		URL:         stringField(fields, "url"),
		Description: stringField(fields, "description"),
		IsFree:      boolField(fields, "isFree"),
		Location:    stringField(fields, "location"),
	}, true
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if v, ok := fields[key]; ok {
		_ = json.Unmarshal(v, &s)
	}
	return s
}

// boolField accepts a JSON bool or a strconv.ParseBool string; anything else is false.
func boolField(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		b, _ = strconv.ParseBool(s)
	}
	return b
}

type replyEnvelope struct {
	Steps *[]replyStep `json:"steps"`
}

// Interpreter turns a raw model reply into a Roadmap. It never fails: any
// reply that does not decode into at least one step yields the fallback.
type Interpreter struct {
	log   *logger.Logger
	ids   IDGenerator
	clock Clock
}

func NewInterpreter(log *logger.Logger, ids IDGenerator, clock Clock) *Interpreter {
	if ids == nil {
		ids = UUIDs
	}
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Interpreter{log: log.With("service", "RoadmapInterpreter"), ids: ids, clock: clock}
}

func (in *Interpreter) Interpret(raw string, profile domain.UserProfile, goals []domain.Goal) *domain.Roadmap {
	steps, err := parseReply(raw)
	if err != nil {
		in.log.Warn("roadmap reply not usable, substituting fallback", "error", err, "reply_len", len(raw))
		steps = fallbackSteps()
	}
	return in.assemble(profile, goals, steps)
}

func parseReply(raw string) ([]replyStep, error) {
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found", errUnparseable)
	}
	var env replyEnvelope
	if err := json.Unmarshal([]byte(obj), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", errUnparseable, err)
	}
	if env.Steps == nil {
		return nil, fmt.Errorf("%w: missing steps", errUnparseable)
	}
	if len(*env.Steps) == 0 {
		return nil, fmt.Errorf("%w: zero steps", errUnparseable)
	}
	return *env.Steps, nil
}

// assemble stamps identifiers, order and dates. Steps are numbered 1..N in
// slice order; goals are copied so later edits never touch this roadmap.
func (in *Interpreter) assemble(profile domain.UserProfile, goals []domain.Goal, steps []replyStep) *domain.Roadmap {
	now := in.clock.Now()
	userID := profile.ID
	if userID == "" {
		userID = anonymousUserID
	}

	outGoals := make([]domain.Goal, len(goals))
	for i, g := range goals {
		g.ID = "goal_" + strconv.Itoa(i)
		outGoals[i] = g
	}

	outSteps := make([]domain.RoadmapStep, len(steps))
	for i, s := range steps {
		resources := make([]domain.Resource, len(s.Resources))
		copy(resources, s.Resources)
		outSteps[i] = domain.RoadmapStep{
			ID:                "step_" + strconv.Itoa(i),
			Title:             s.Title,
			Description:       s.Description,
			EstimatedDuration: s.EstimatedDuration,
			Resources:         resources,
			IsCompleted:       false,
			Order:             i + 1,
		}
	}

	return &domain.Roadmap{
		ID:                      in.ids.NewID(),
		UserID:                  userID,
		Goals:                   outGoals,
		Steps:                   outSteps,
		GeneratedAt:             now,
		Progress:                0,
		EstimatedCompletionDate: now.AddDate(0, completionMonths, 0),
	}
}

func fallbackSteps() []replyStep {
	return []replyStep{
		{
			Title:             "Research and Planning",
			Description:       "Start by researching your chosen field and creating a detailed plan",
			EstimatedDuration: "2-4 weeks",
			Resources: []domain.Resource{{
				Title:       "Online Research Guide",
				Type:        domain.ResourceVideo,
				Description: "Learn how to effectively research your career path",
				IsFree:      true,
				URL:         "#",
			}},
		},
		{
			Title:             "Skill Development",
			Description:       "Focus on building the core skills needed for your goals",
			EstimatedDuration: "3-6 months",
			Resources: []domain.Resource{{
				Title:       "Free Online Courses",
				Type:        domain.ResourceCourse,
				Description: "Access free courses to develop your skills",
				IsFree:      true,
				URL:         "#",
			}},
		},
	}
}
