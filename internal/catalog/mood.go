package catalog

import "github.com/harrison/screener/internal/models"

func majorDepressionAdult() models.Instrument {
	return models.Instrument{
		ID:          "mdd_adult",
		Title:       "Major Depressive Disorder (Adult)",
		Description: "A DSM-5 criterion-based screen for symptoms of major depression over the past two weeks.",
		Icon:        "🌧️",
		Stats:       models.Stats{Questions: 12, Minutes: 4, Rating: "DSM-5 based"},
		Questions: []models.Question{
			question("mdd_a1", "Over the past two weeks, have you felt depressed, sad, empty or hopeless for most of the day, nearly every day?", yesNo()),
			question("mdd_a2", "Over the past two weeks, have you lost interest or pleasure in all, or almost all, of your usual activities?", yesNo()),
			question("mdd_a3", "Have you had a significant change in appetite or weight (without dieting) during this time?", yesNo()),
			question("mdd_a4", "Have you had trouble sleeping, or been sleeping much more than usual, nearly every day?", yesNo()),
			question("mdd_a5", "Have others noticed that you are restless, or that you are moving or speaking more slowly than usual?", yesNo()),
			question("mdd_a6", "Have you felt tired or without energy nearly every day?", yesNo()),
			question("mdd_a7", "Have you felt worthless, or excessively or inappropriately guilty, nearly every day?", yesNo()),
			question("mdd_a8", "Have you had trouble thinking, concentrating or making decisions nearly every day?", yesNo()),
			question("mdd_a9", "Have you had recurrent thoughts of death, thoughts of suicide, or thoughts of harming yourself?", yesNoCrisis()),
			question("mdd_a10", "Have these symptoms been present for at least two weeks?", yesNo()),
			question("mdd_a11", "Have these symptoms caused significant distress or made it hard to manage work, school, relationships or daily tasks?", yesNo()),
			question("mdd_a12", "Are these symptoms present even when you are not using alcohol, drugs or a new medication, and without a medical condition that could explain them?", yesNo()),
		},
	}
}

func bipolarScreen() models.Instrument {
	return models.Instrument{
		ID:          "bipolar_screen",
		Title:       "Bipolar Spectrum Screen",
		Description: "A mood questionnaire about periods of elevated or irritable mood and how much they affected your life.",
		Icon:        "🎭",
		Stats:       models.Stats{Questions: 11, Minutes: 4, Rating: "Mood questionnaire"},
		Questions: []models.Question{
			question("bp_1", "Has there ever been a period when you were not your usual self and felt so good or hyper that others thought you were not your normal self, or you got into trouble?", yesNo()),
			question("bp_2", "...you were so irritable that you shouted at people or started fights or arguments?", yesNo()),
			question("bp_3", "...you felt much more self-confident than usual?", yesNo()),
			question("bp_4", "...you got much less sleep than usual and found you didn't really miss it?", yesNo()),
			question("bp_5", "...you were much more talkative or spoke much faster than usual?", yesNo()),
			question("bp_6", "...thoughts raced through your head or you couldn't slow your mind down?", yesNo()),
			question("bp_7", "...you were so easily distracted that you had trouble concentrating or staying on track?", yesNo()),
			question("bp_8", "...you had much more energy or were much more active than usual?", yesNo()),
			question("bp_9", "...you did things that were unusual for you, or that others might have thought were excessive, foolish or risky (for example spending, driving or sexual activity)?", yesNo()),
			question("bp_10", "If you answered yes to more than one of the above, have several of these ever happened during the same period of time?", yesNo()),
			question("bp_11", "How much of a problem did any of these cause you, such as being unable to work, having family, money or legal troubles, or getting into arguments?", []models.Option{
				{Value: 0, Label: "No problem"},
				{Value: 0, Label: "Minor problem"},
				{Value: 1, Label: "Moderate problem"},
				{Value: 1, Label: "Serious problem"},
			}),
		},
	}
}

func depressionQuickCheck() models.Instrument {
	return models.Instrument{
		ID:          "depression",
		Title:       "Depression Quick Check",
		Description: "Two brief questions about low mood and thoughts of self-harm over the last two weeks.",
		Icon:        "😔",
		Stats:       models.Stats{Questions: 2, Minutes: 1, Rating: "Quick check"},
		Questions: []models.Question{
			question("dep_1", "Over the last two weeks, how often have you been bothered by feeling down, depressed or hopeless?", twoWeekFrequency()),
			question("dep_9", "Over the last two weeks, how often have you been bothered by thoughts that you would be better off dead, or of hurting yourself in some way?", twoWeekFrequencyCrisis()),
		},
	}
}
