package interview

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// commonSkills drive both skill-specific question injection and the
// placeholder fills in the templated questions. Order matters: the
// first detected skill seeds the hands-on question.
var commonSkills = []string{
	"python", "javascript", "react", "node", "aws", "docker",
	"kubernetes", "sql", "mongodb", "machine learning", "ai",
	"django", "flask", "fastapi", "java", "c++", "golang",
}

var (
	seniorCues = []string{"senior", "5+ years", "7+ years", "lead"}
	midCues    = []string{"mid-level", "3+ years", "4+ years"}
)

// Generator picks interview questions from a fixed bank, randomized for
// variety. Inject a seeded rand.Rand for reproducible output.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds up to numQuestions questions tailored to the job
// description and role. The first question is always an introduction;
// the rest are balanced across categories, weighted toward technical
// depth for senior postings when the set is small.
func (g *Generator) Generate(jobDescription, jobRole string, numQuestions int) []Question {
	jobLower := strings.ToLower(jobDescription)

	var skills []string
	for _, skill := range commonSkills {
		if strings.Contains(jobLower, skill) {
			skills = append(skills, skill)
		}
	}
	level := experienceLevel(jobLower)

	bank := buildQuestionBank(jobRole, skills)

	selected := make([]Question, 0, numQuestions)
	selected = append(selected, g.choice(bank.introduction[:3]))

	if numQuestions >= 5 {
		selected = append(selected,
			g.choice(bank.technical[:5]),
			g.choice(bank.behavioral[:5]),
			g.choice(bank.situational[:4]),
			g.choice(bank.motivation[:4]),
		)
		if numQuestions > 5 {
			remaining := numQuestions - 5
			extraPool := g.sample(bank.technical[5:10], 3)
			extraPool = append(extraPool, g.sample(bank.behavioral[5:10], 2)...)
			extraPool = append(extraPool, g.sample(bank.situational[4:8], 2)...)
			selected = append(selected, g.sample(extraPool, remaining)...)
		}
	} else {
		var pool []Question
		if level == "senior" {
			pool = []Question{
				g.choice(bank.technical[:5]),
				g.choice(bank.behavioral[2:5]),
				g.choice(bank.motivation[:3]),
			}
		} else {
			pool = []Question{
				g.choice(bank.technical[:3]),
				g.choice(bank.motivation[:3]),
				g.choice(bank.behavioral[:3]),
			}
		}
		if numQuestions > 0 {
			take := numQuestions - 1
			if take > len(pool) {
				take = len(pool)
			}
			selected = append(selected, pool[:take]...)
		}
	}

	if numQuestions < 0 {
		numQuestions = 0
	}
	if len(selected) > numQuestions {
		selected = selected[:numQuestions]
	}
	for i := range selected {
		selected[i].ID = i + 1
	}
	return selected
}

func experienceLevel(jobLower string) string {
	for _, cue := range seniorCues {
		if strings.Contains(jobLower, cue) {
			return "senior"
		}
	}
	for _, cue := range midCues {
		if strings.Contains(jobLower, cue) {
			return "mid"
		}
	}
	return "entry"
}

func (g *Generator) choice(pool []Question) Question {
	return pool[g.rng.Intn(len(pool))]
}

// sample returns up to n distinct elements of pool in random order.
func (g *Generator) sample(pool []Question, n int) []Question {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Question, 0, n)
	for _, idx := range g.rng.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}

type questionBank struct {
	introduction []Question
	technical    []Question
	behavioral   []Question
	situational  []Question
	motivation   []Question
}

func buildQuestionBank(jobRole string, skills []string) questionBank {
	roleOrField := "this field"
	roleOrPosition := "particular position"
	if jobRole != "" {
		roleOrField = jobRole
		roleOrPosition = jobRole
	}

	firstSkill := "the technologies"
	if len(skills) > 0 {
		firstSkill = skills[0]
	}
	stackPair := "modern technologies"
	if len(skills) >= 2 {
		stackPair = strings.Join(skills[:2], ", ")
	}

	bank := questionBank{
		introduction: []Question{
			{Question: "Tell me about yourself and your background in the context of this role.", Category: "Introduction", Difficulty: "easy"},
			{Question: "Walk me through your resume and highlight your most relevant experience for this position.", Category: "Introduction", Difficulty: "easy"},
			{Question: fmt.Sprintf("What interests you about working in %s?", roleOrField), Category: "Introduction", Difficulty: "easy"},
			{Question: "How did you get started in your current career path?", Category: "Introduction", Difficulty: "easy"},
			{Question: "What are your key strengths that make you suitable for this role?", Category: "Introduction", Difficulty: "easy"},
		},
		technical: []Question{
			{Question: fmt.Sprintf("Describe your hands-on experience with %s mentioned in the job description.", firstSkill), Category: "Technical", Difficulty: "medium"},
			{Question: "Explain a challenging technical problem you solved recently and walk me through your approach.", Category: "Technical", Difficulty: "medium"},
			{Question: "How do you stay updated with the latest technologies and industry trends in your field?", Category: "Technical", Difficulty: "easy"},
			{Question: fmt.Sprintf("Can you explain how you would architect a system using %s?", stackPair), Category: "Technical", Difficulty: "hard"},
			{Question: "Describe a time when you had to debug a complex issue. What was your methodology?", Category: "Technical", Difficulty: "medium"},
			{Question: "How do you ensure code quality and maintainability in your projects?", Category: "Technical", Difficulty: "medium"},
			{Question: "Tell me about a technical decision you made that you later regretted. What did you learn?", Category: "Technical", Difficulty: "hard"},
			{Question: "How do you approach performance optimization in your applications?", Category: "Technical", Difficulty: "medium"},
			{Question: "Describe your experience with version control and collaborative development workflows.", Category: "Technical", Difficulty: "easy"},
			{Question: "How do you handle technical debt in a codebase?", Category: "Technical", Difficulty: "medium"},
			{Question: "What testing strategies do you implement to ensure software reliability?", Category: "Technical", Difficulty: "medium"},
			{Question: "Explain a recent technology you learned and how you applied it in a project.", Category: "Technical", Difficulty: "medium"},
			{Question: "How would you explain a complex technical concept to a non-technical stakeholder?", Category: "Technical", Difficulty: "medium"},
			{Question: "Describe your experience with database design and optimization.", Category: "Technical", Difficulty: "medium"},
			{Question: "How do you approach security considerations in your development work?", Category: "Technical", Difficulty: "medium"},
		},
		behavioral: []Question{
			{Question: "Describe a time when you had to work under tight deadlines. How did you manage your time and priorities?", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Tell me about a time when you disagreed with a team member or manager. How did you handle the situation?", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Give an example of a project where you demonstrated leadership, even if you weren't the formal leader.", Category: "Behavioral", Difficulty: "hard"},
			{Question: "Describe a situation where you had to learn something completely new quickly. How did you approach it?", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Tell me about a time when you made a mistake at work. How did you handle it?", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Describe a situation where you had to give difficult feedback to a colleague. How did you approach it?", Category: "Behavioral", Difficulty: "hard"},
			{Question: "Give me an example of when you went above and beyond your job responsibilities.", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Tell me about a time when you had to deal with a difficult client or stakeholder.", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Describe a project that failed or didn't go as planned. What did you learn from it?", Category: "Behavioral", Difficulty: "hard"},
			{Question: "Tell me about a time when you had to persuade others to adopt your idea or approach.", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Describe a situation where you had to balance multiple competing priorities.", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Give an example of when you helped a team member who was struggling.", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Tell me about a time when you received constructive criticism. How did you respond?", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Describe a situation where you had to adapt to significant changes at work.", Category: "Behavioral", Difficulty: "medium"},
			{Question: "Give an example of when you took initiative without being asked.", Category: "Behavioral", Difficulty: "medium"},
		},
		situational: []Question{
			{Question: "How would you prioritize multiple urgent tasks with conflicting deadlines from different stakeholders?", Category: "Situational", Difficulty: "medium"},
			{Question: "If you inherited a poorly documented and legacy codebase, what would be your step-by-step approach?", Category: "Situational", Difficulty: "medium"},
			{Question: "How would you handle a situation where you discovered a critical bug in production?", Category: "Situational", Difficulty: "medium"},
			{Question: "If a project deadline is at risk, what steps would you take to get back on track?", Category: "Situational", Difficulty: "medium"},
			{Question: "How would you approach a situation where a team member is consistently missing deadlines?", Category: "Situational", Difficulty: "hard"},
			{Question: "If you had to choose between delivering a feature quickly or ensuring perfect code quality, how would you decide?", Category: "Situational", Difficulty: "hard"},
			{Question: "How would you handle a disagreement about technical architecture with senior team members?", Category: "Situational", Difficulty: "hard"},
			{Question: "If you were asked to work on a project with unfamiliar technology, how would you approach it?", Category: "Situational", Difficulty: "medium"},
			{Question: "How would you respond if a stakeholder kept changing project requirements?", Category: "Situational", Difficulty: "medium"},
			{Question: "What would you do if you discovered that your team's approach was inefficient, but they were resistant to change?", Category: "Situational", Difficulty: "hard"},
			{Question: "How would you handle a situation where you need to say no to a manager's request?", Category: "Situational", Difficulty: "hard"},
			{Question: "If you noticed a team member struggling but not asking for help, what would you do?", Category: "Situational", Difficulty: "medium"},
		},
		motivation: []Question{
			{Question: fmt.Sprintf("Why are you interested in this %s?", roleOrPosition), Category: "Motivation", Difficulty: "easy"},
			{Question: "Where do you see yourself in 5 years, and how does this role fit into your career goals?", Category: "Motivation", Difficulty: "easy"},
			{Question: "What motivates you in your work, and what are you most passionate about professionally?", Category: "Motivation", Difficulty: "easy"},
			{Question: "What attracts you to our company specifically?", Category: "Motivation", Difficulty: "easy"},
			{Question: "What kind of work environment do you thrive in?", Category: "Motivation", Difficulty: "easy"},
			{Question: "What are your salary expectations and what factors are important to you beyond compensation?", Category: "Motivation", Difficulty: "medium"},
			{Question: "Why are you looking to leave your current role?", Category: "Motivation", Difficulty: "medium"},
			{Question: "What would make you choose our company over other opportunities?", Category: "Motivation", Difficulty: "medium"},
			{Question: "What are your long-term career aspirations?", Category: "Motivation", Difficulty: "easy"},
			{Question: "What type of projects or challenges are you most excited to work on?", Category: "Motivation", Difficulty: "easy"},
			{Question: "How do you define success in your career?", Category: "Motivation", Difficulty: "easy"},
			{Question: "What professional achievement are you most proud of and why?", Category: "Motivation", Difficulty: "easy"},
		},
	}

	// Skill-specific depth probes, two per detected skill, up to three
	// skills. Appended after the static bank so the selection slices
	// above keep their meaning.
	limit := len(skills)
	if limit > 3 {
		limit = 3
	}
	for _, skill := range skills[:limit] {
		display := titleSkill(skill)
		bank.technical = append(bank.technical,
			Question{Question: fmt.Sprintf("Can you discuss a specific project where you used %s? What challenges did you face and how did you overcome them?", display), Category: "Technical", Difficulty: "medium"},
			Question{Question: fmt.Sprintf("How would you explain %s to someone who is just learning it?", display), Category: "Technical", Difficulty: "easy"},
		)
	}
	return bank
}

func titleSkill(skill string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range skill {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
