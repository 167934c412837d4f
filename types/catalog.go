package types

const (
	DEFAULT_PAGE      = "home"
	DEFAULT_VIEW_MODE = "grid"
	DEFAULT_TONE      = 50

	CollectionMy        = "my"
	CollectionSuggested = "suggested"

	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPosted    = "posted"
)

// Pages the client can navigate to.
var Pages = []string{
	"home",
	"create-ambassador",
	"content-hub",
	"scheduler",
	"analytics",
	"engagement",
	"marketplace",
	"settings",
}

// BrandValues is the fixed vocabulary for the "core values" selection.
var BrandValues = []string{
	"Authenticity",
	"Innovation",
	"Sustainability",
	"Community",
	"Empowerment",
	"Creativity",
	"Wellness",
	"Excellence",
}

// ContentThemes is the fixed vocabulary for the "content themes" selection.
var ContentThemes = []string{
	"Behind the Scenes",
	"Product Showcases",
	"Lifestyle",
	"Education",
	"Inspiration",
	"Trends",
	"Community Stories",
	"Tips & Tricks",
}

// ToneKeys are the four tone slider identifiers, derived from their labels.
var ToneKeys = []string{"playful", "professional", "bold", "warm"}

var Platforms = []string{"instagram", "tiktok", "x", "facebook", "linkedin"}

// DefaultHashtags is the fixed tag set attached to generated custom posts.
var DefaultHashtags = []string{"#brandambassador", "#aicontent", "#lifestyle", "#inspiration"}

type SamplePost struct {
	Image   string
	Caption string
	Reason  string
}

// SuggestedPool seeds each session's suggested collection and feeds the
// "generate more" action.
var SuggestedPool = []SamplePost{
	{
		Image:   "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800",
		Caption: "Fresh starts taste better in the morning. Here's to choices that fuel your whole day 🌱",
		Reason:  "Wellness content posted before 9 AM sees 2.3x higher engagement with your audience",
	},
	{
		Image:   "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
		Caption: "Five minutes of stillness can change the shape of an entire day. When did you last pause?",
		Reason:  "Question-led captions drive 40% more comments from followers like yours",
	},
	{
		Image:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800",
		Caption: "Progress isn't loud. It's showing up on the days nobody is watching 💪",
		Reason:  "Motivational fitness posts are trending 18% above baseline this week",
	},
	{
		Image:   "https://images.unsplash.com/photo-1490645935967-10de6ba17061?w=800",
		Caption: "Color on the plate, color in the day. Eating well doesn't have to be complicated.",
		Reason:  "Food photography with natural light performs best in your niche",
	},
	{
		Image:   "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=800",
		Caption: "Behind every launch is a table full of coffee cups and half-finished ideas. Worth it.",
		Reason:  "Behind-the-scenes content builds 60% stronger follower trust",
	},
	{
		Image:   "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800",
		Caption: "Step outside. The algorithm can wait, the sunset can't 🌄",
		Reason:  "Outdoor lifestyle posts peak on weekend afternoons for your audience",
	},
}

type PricingPlan struct {
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthlyPrice"`
	OfferPrice   float64 `json:"offerPrice"`
	OfferSeconds int     `json:"offerSeconds"`
	Features     []string `json:"features"`
}

// GetPricingOffer returns the limited-time plan shown by the subscription gate.
func GetPricingOffer() PricingPlan {
	return PricingPlan{
		Name:         "Creator Pro",
		MonthlyPrice: 49.0,
		OfferPrice:   29.0,
		OfferSeconds: 600,
		Features: []string{
			"Unlimited AI content generation",
			"Connect up to 5 social accounts",
			"Auto-scheduling at peak times",
			"Advanced audience analytics",
		},
	}
}

func IsValidBrandValue(v string) bool   { return contains(BrandValues, v) }
func IsValidContentTheme(v string) bool { return contains(ContentThemes, v) }
func IsValidToneKey(v string) bool      { return contains(ToneKeys, v) }
func IsValidPlatform(v string) bool     { return contains(Platforms, v) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
