package utils

import (
	"fmt"
	"math/rand"
)

var bestTimeDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var bestTimeSlots = []string{"8:00 AM", "9:30 AM", "12:00 PM", "2:30 PM", "5:00 PM", "6:30 PM", "8:00 PM"}

// RandomPredictedReach returns a display string like "7.4K". There is no
// prediction model behind it.
func RandomPredictedReach() string {
	return fmt.Sprintf("%.1fK", 2.0+rand.Float64()*10.5)
}

// RandomBestTime returns a display string like "Tuesday 6:30 PM".
func RandomBestTime() string {
	day := bestTimeDays[rand.Intn(len(bestTimeDays))]
	slot := bestTimeSlots[rand.Intn(len(bestTimeSlots))]
	return fmt.Sprintf("%s %s", day, slot)
}
