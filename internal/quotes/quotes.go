// Package quotes holds the read-only motivational content shown by the SOS
// command when the user is fighting an urge.
package quotes

import (
	"math/rand"
	"time"
)

type Quote struct {
	Text   string
	Author string
}

type Activity struct {
	Icon string
	Text string
}

var Motivational = []Quote{
	{Text: "The secret of change is to focus all of your energy not on fighting the old, but on building the new.", Author: "Socrates"},
	{Text: "Every day is a new beginning. Take a deep breath, smile, and start again.", Author: "Unknown"},
	{Text: "You are not your habits. You are the person who can change them.", Author: "James Clear"},
	{Text: "The pain you feel today will be the strength you feel tomorrow.", Author: "Unknown"},
	{Text: "Fall seven times, stand up eight.", Author: "Japanese Proverb"},
	{Text: "Your brain is rewiring itself right now. Every moment of resistance makes you stronger.", Author: "Unknown"},
	{Text: "Freedom is what you do with what's been done to you.", Author: "Jean-Paul Sartre"},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{Text: "Boredom is the gateway to creativity. Embrace the stillness.", Author: "Unknown"},
	{Text: "Strength does not come from winning. Your struggles develop your strengths.", Author: "Arnold Schwarzenegger"},
	{Text: "The only person you are destined to become is the person you decide to be.", Author: "Ralph Waldo Emerson"},
	{Text: "Your future self is watching you right now through memories. Make them proud.", Author: "Unknown"},
	{Text: "Recovery is not a race. You don't have to feel guilty if it takes you longer than you thought.", Author: "Unknown"},
	{Text: "What lies behind us and what lies before us are tiny matters compared to what lies within us.", Author: "Ralph Waldo Emerson"},
	{Text: "The chains of habit are too light to be felt until they are too heavy to be broken.", Author: "Warren Buffett"},
	{Text: "Every moment of resistance is a victory. You are literally rewiring your brain.", Author: "Unknown"},
	{Text: "Almost everything will work again if you unplug it for a few minutes, including you.", Author: "Anne Lamott"},
	{Text: "A year from now, you will wish you had started today.", Author: "Karen Lamb"},
	{Text: "The mind is like water. When it's turbulent, it's difficult to see. When it's calm, everything becomes clear.", Author: "Prasad Mahes"},
	{Text: "Attention is the rarest and purest form of generosity.", Author: "Simone Weil"},
}

var BrainScience = []string{
	"Your brain's dopamine receptors are healing right now. Each day offline allows neural pathways to normalize.",
	"Endless scrolling hijacks the brain's reward system the same way addictive substances do. Recovery is real and measurable.",
	"After just 2 weeks, your prefrontal cortex begins to regain control over impulsive behaviors and attention.",
	"Neuroplasticity means your brain can form new, healthy neural pathways at any age. It's never too late to rewire.",
	"The urge to check your phone is your brain craving a dopamine hit. It peaks and passes within 15-20 minutes.",
	"Studies show that reducing screen time leads to improved focus, deeper sleep, and better emotional regulation within weeks.",
	"Your brain fog is lifting. Dopamine sensitivity improves significantly in the first 90 days of reduced stimulation.",
	"Real human connection releases oxytocin, a far more fulfilling neurochemical than dopamine spikes from infinite feeds.",
	"Short-form content trains your brain to expect constant novelty. Recovery restores your ability to focus deeply.",
	"Your attention span isn't broken, it's been trained for distraction. Neuroplasticity lets you retrain it for focus.",
	"The default mode network, responsible for creativity and self-reflection, strengthens when you reduce digital noise.",
	"Each hour without doom scrolling allows your nervous system to downregulate from chronic overstimulation.",
}

var ActivitySuggestions = []Activity{
	{Icon: "🚶", Text: "Go for a walk without your phone"},
	{Icon: "📞", Text: "Call a friend or family member"},
	{Icon: "📖", Text: "Read a physical book for 10 minutes"},
	{Icon: "✏️", Text: "Write in your journal"},
	{Icon: "🍵", Text: "Make tea and sit in silence"},
	{Icon: "🎧", Text: "Listen to a full album, no skipping"},
	{Icon: "🏃", Text: "Go for a run or exercise"},
	{Icon: "💧", Text: "Drink a glass of water mindfully"},
	{Icon: "🌿", Text: "Spend 5 minutes in nature"},
	{Icon: "🙏", Text: "Practice gratitude - name 3 things"},
	{Icon: "🧘", Text: "Do 5 minutes of stretching"},
	{Icon: "🎨", Text: "Do something creative with your hands"},
}

func Random() Quote {
	return Motivational[rand.Intn(len(Motivational))]
}

// ForDay returns the same quote for every call on a given calendar day,
// rotating through the catalog day by day.
func ForDay(t time.Time) Quote {
	days := t.Unix() / 86400
	idx := int(days % int64(len(Motivational)))
	if idx < 0 {
		idx += len(Motivational)
	}
	return Motivational[idx]
}

func RandomBrainFact() string {
	return BrainScience[rand.Intn(len(BrainScience))]
}

func RandomActivity() Activity {
	return ActivitySuggestions[rand.Intn(len(ActivitySuggestions))]
}
