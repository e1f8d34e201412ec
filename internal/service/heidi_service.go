package service

import (
	"context"
	"fmt"
)

// Generator is the slice of the LLM client the Heidi features need. A fake
// generator stands in during tests.
type Generator interface {
	Configured() bool
	Chat(ctx context.Context, system, user string, temperature float64) (string, error)
}

// Heidi speaks with one of four voices. Unknown names fall back to
// professional rather than erroring, so the frontend can ship new
// personality labels ahead of the backend.
var personalityPrompts = map[string]string{
	"professional": "You are Heidi, a professional and crisp AI assistant for content creators. Be concise and actionable.",
	"hype":         "You are Heidi, a hype and energetic AI assistant! Use exclamation marks, be enthusiastic and motivating!",
	"sarcastic":    "You are Heidi, a witty and sarcastic AI assistant. Be clever, use dry humor, but still be helpful.",
	"zen":          "You are Heidi, a calm and zen AI assistant. Be thoughtful, measured, and peaceful in your responses.",
}

var platformGuidance = map[string]string{
	"tiktok":  "Write a catchy TikTok caption with trending hashtags. Keep it under 150 characters.",
	"youtube": "Write a YouTube Shorts title and description. Be searchable and click-worthy.",
	"twitter": "Write a Twitter/X post. Be punchy, use 1-2 relevant hashtags. Under 280 characters.",
}

type HeidiService interface {
	Status() (bool, string)
	Chat(ctx context.Context, prompt, personality string) (string, error)
	AdRead(ctx context.Context, sponsorName, sponsorDescription, personality string) (string, error)
	CommentReply(ctx context.Context, comment, personality string) (string, error)
	ClipPost(ctx context.Context, clipDescription, platform string) (string, error)
	SponsorMatch(ctx context.Context, creatorBio, audienceData string) (string, error)
	CourseOutline(ctx context.Context, topic, expertise string) (string, error)
}

type HeidiServiceImpl struct {
	gen Generator
}

func NewHeidiService(gen Generator) HeidiService {
	return &HeidiServiceImpl{gen: gen}
}

func (s *HeidiServiceImpl) Status() (bool, string) {
	if s.gen.Configured() {
		return true, "Azure OpenAI is connected and ready."
	}
	return false, "Azure OpenAI is NOT configured. Set AZURE_OPENAI_API_KEY, AZURE_OPENAI_ENDPOINT, and AZURE_OPENAI_DEPLOYMENT_NAME in Secrets."
}

func (s *HeidiServiceImpl) Chat(ctx context.Context, prompt, personality string) (string, error) {
	return s.generate(ctx, prompt, personality)
}

func (s *HeidiServiceImpl) AdRead(ctx context.Context, sponsorName, sponsorDescription, personality string) (string, error) {
	prompt := fmt.Sprintf(`Write a natural-sounding 30-second podcast ad read for "%s".
     Product description: %s.
     Make it conversational, not salesy. Include a call-to-action.`, sponsorName, sponsorDescription)
	return s.generate(ctx, prompt, personality)
}

func (s *HeidiServiceImpl) CommentReply(ctx context.Context, comment, personality string) (string, error) {
	prompt := fmt.Sprintf(`A fan posted this comment: "%s"
     Write a short, authentic reply (1-2 sentences) as the creator. Be genuine and engaging.`, comment)
	return s.generate(ctx, prompt, personality)
}

// ClipPost always uses the hype voice; the caller picks the platform only.
func (s *HeidiServiceImpl) ClipPost(ctx context.Context, clipDescription, platform string) (string, error) {
	if platform == "" {
		platform = "twitter"
	}
	prompt := fmt.Sprintf(`Generate a social media post for this clip: "%s".
     Platform: %s. %s`, clipDescription, platform, platformGuidance[platform])
	return s.generate(ctx, prompt, "hype")
}

func (s *HeidiServiceImpl) SponsorMatch(ctx context.Context, creatorBio, audienceData string) (string, error) {
	if audienceData == "" {
		audienceData = "General gaming audience"
	}
	prompt := fmt.Sprintf(`As a brand partnership analyst, analyze this creator profile and suggest 3 ideal sponsor matches:
     Creator bio: %s
     Audience info: %s
     For each sponsor, provide: Brand name, Why it's a fit, Estimated CPM range, Pitch angle.`, creatorBio, audienceData)
	return s.generate(ctx, prompt, "professional")
}

func (s *HeidiServiceImpl) CourseOutline(ctx context.Context, topic, expertise string) (string, error) {
	if expertise == "" {
		expertise = "intermediate"
	}
	prompt := fmt.Sprintf(`Create a detailed online course outline for teaching "%s".
     Creator's expertise level: %s.
     Include: Course title, 5-8 modules with lesson names, estimated duration per module,
     and a compelling course description for the sales page.`, topic, expertise)
	return s.generate(ctx, prompt, "professional")
}

func (s *HeidiServiceImpl) generate(ctx context.Context, prompt, personality string) (string, error) {
	system, ok := personalityPrompts[personality]
	if !ok {
		system = personalityPrompts["professional"]
	}
	return s.gen.Chat(ctx, system, prompt, 0.7)
}
