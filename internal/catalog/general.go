package catalog

import "github.com/harrison/screener/internal/models"

func adhdAdult() models.Instrument {
	return models.Instrument{
		ID:          "adhd_adult",
		Title:       "ADHD (Adult)",
		Description: "A DSM-5 criterion-based screen for adult attention-deficit/hyperactivity symptoms over the past six months.",
		Icon:        "⚡",
		Stats:       models.Stats{Questions: 15, Minutes: 5, Rating: "DSM-5 based"},
		Questions: []models.Question{
			question("adhd_a1", "Over the past six months, how often have you made careless mistakes or overlooked details at work or in other activities?", behaviorFrequency()),
			question("adhd_a2", "How often have you had difficulty keeping your attention on tasks, conversations or lengthy reading?", behaviorFrequency()),
			question("adhd_a3", "How often have you had difficulty following through on instructions or finishing tasks?", behaviorFrequency()),
			question("adhd_a4", "How often have you had difficulty organizing tasks, managing time or keeping things in order?", behaviorFrequency()),
			question("adhd_a5", "How often have you lost things you need, such as keys, wallet, phone or paperwork?", behaviorFrequency()),
			question("adhd_a6", "How often have you been forgetful in daily activities, such as appointments, bills or returning calls?", behaviorFrequency()),
			question("adhd_a7", "How often have you fidgeted, tapped your hands or feet, or squirmed in your seat?", behaviorFrequency()),
			question("adhd_a8", "How often have you left your seat in situations where you were expected to stay seated?", behaviorFrequency()),
			question("adhd_a9", "How often have you felt restless or 'driven by a motor'?", behaviorFrequency()),
			question("adhd_a10", "How often have you talked excessively?", behaviorFrequency()),
			question("adhd_a11", "How often have you finished other people's sentences or blurted out answers before a question was complete?", behaviorFrequency()),
			question("adhd_a12", "How often have you had difficulty waiting your turn, or interrupted or intruded on others?", behaviorFrequency()),
			question("adhd_a13", "Were several of these symptoms present before you were 12 years old?", yesNo()),
			question("adhd_a14", "Are several of these symptoms present in two or more settings (for example at home, at work or with friends)?", yesNo()),
			question("adhd_a15", "Do these symptoms clearly interfere with, or reduce the quality of, your social, school or work functioning?", yesNo()),
		},
	}
}

func stressCheck() models.Instrument {
	return models.Instrument{
		ID:          "stress",
		Title:       "Stress Check",
		Description: "Five questions about how stressful and unpredictable your life has felt over the last month.",
		Icon:        "🌡️",
		Stats:       models.Stats{Questions: 5, Minutes: 2, Rating: "Wellness check"},
		Questions: []models.Question{
			question("stress_1", "In the last month, how often have you been upset because of something that happened unexpectedly?", monthFrequency()),
			question("stress_2", "In the last month, how often have you felt unable to control the important things in your life?", monthFrequency()),
			question("stress_3", "In the last month, how often have you felt nervous and stressed?", monthFrequency()),
			question("stress_4", "In the last month, how often have you found that you could not cope with all the things you had to do?", monthFrequency()),
			question("stress_5", "In the last month, how often have you felt difficulties were piling up so high that you could not overcome them?", monthFrequency()),
		},
	}
}

func sleepCheck() models.Instrument {
	return models.Instrument{
		ID:          "sleep",
		Title:       "Sleep Quality Check",
		Description: "Four questions about the severity of sleep difficulties over the last two weeks.",
		Icon:        "🌙",
		Stats:       models.Stats{Questions: 4, Minutes: 2, Rating: "Wellness check"},
		Questions: []models.Question{
			question("sleep_1", "How severe is your difficulty falling asleep?", sleepSeverity()),
			question("sleep_2", "How severe is your difficulty staying asleep?", sleepSeverity()),
			question("sleep_3", "How severe is your problem with waking up too early?", sleepSeverity()),
			question("sleep_4", "How much do your sleep difficulties interfere with your daily functioning?", sleepSeverity()),
		},
	}
}
