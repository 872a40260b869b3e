package roadmap

type GoalCategory string

const (
	GoalCareer    GoalCategory = "CAREER"
	GoalEducation GoalCategory = "EDUCATION"
	GoalBusiness  GoalCategory = "BUSINESS"
	GoalPersonal  GoalCategory = "PERSONAL"
)

type GoalTimeline string

const (
	TimelineShortTerm  GoalTimeline = "SHORT_TERM"
	TimelineMediumTerm GoalTimeline = "MEDIUM_TERM"
	TimelineLongTerm   GoalTimeline = "LONG_TERM"
)

type Goal struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"required"`
	Category    GoalCategory `json:"category" validate:"required,oneof=CAREER EDUCATION BUSINESS PERSONAL"`
	Description string       `json:"description"`
	Timeline    GoalTimeline `json:"timeline" validate:"required,oneof=SHORT_TERM MEDIUM_TERM LONG_TERM"`
}
