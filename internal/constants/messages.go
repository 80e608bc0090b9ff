package constants

// ReminderMessages is the pool a reminder body is drawn from at schedule time.
var ReminderMessages = []string{
	"Time for dhikr! Remember Allah and find peace.",
	"Take a moment to remember Allah through dhikr.",
	"Your spiritual journey awaits. Start your dhikr routine.",
	"Connect with Allah through beautiful dhikr.",
	"A few minutes of dhikr can bring tranquility to your day.",
}
