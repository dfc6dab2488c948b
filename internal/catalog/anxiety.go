package catalog

import "github.com/harrison/screener/internal/models"

func generalizedAnxietyAdult() models.Instrument {
	return models.Instrument{
		ID:          "gad_adult",
		Title:       "Generalized Anxiety Disorder (Adult)",
		Description: "A DSM-5 criterion-based screen for persistent, hard-to-control worry and its physical symptoms.",
		Icon:        "🌀",
		Stats:       models.Stats{Questions: 10, Minutes: 3, Rating: "DSM-5 based"},
		Questions: []models.Question{
			question("gad_a1", "Have you experienced excessive anxiety and worry, on more days than not, for at least six months?", yesNo()),
			question("gad_a2", "Do you find it difficult to control the worry?", yesNo()),
			question("gad_a3", "Over the last two weeks, how often have you felt restless, keyed up or on edge?", twoWeekFrequency()),
			question("gad_a4", "How often have you been easily fatigued?", twoWeekFrequency()),
			question("gad_a5", "How often have you had difficulty concentrating, or found your mind going blank?", twoWeekFrequency()),
			question("gad_a6", "How often have you felt irritable?", twoWeekFrequency()),
			question("gad_a7", "How often have you noticed muscle tension?", twoWeekFrequency()),
			question("gad_a8", "How often have you had trouble falling or staying asleep, or restless, unsatisfying sleep?", twoWeekFrequency()),
			question("gad_a9", "Do the worry or physical symptoms cause significant distress or interfere with work, school or relationships?", yesNo()),
			question("gad_a10", "Are these symptoms present even when you are not using alcohol, drugs or medication, and without a medical condition that could explain them?", yesNo()),
		},
	}
}

func obsessiveCompulsiveAdult() models.Instrument {
	return models.Instrument{
		ID:          "ocd_adult",
		Title:       "Obsessive-Compulsive Disorder",
		Description: "Screens for intrusive thoughts or repetitive behaviors and rates how much they affect daily life.",
		Icon:        "🔁",
		Stats:       models.Stats{Questions: 10, Minutes: 4, Rating: "DSM-5 based"},
		Questions: []models.Question{
			question("ocd_a1", "Do you have recurring, unwanted thoughts, urges or images that cause you anxiety or distress and that you try to ignore or suppress?", yesNo()),
			question("ocd_a2", "Do you feel driven to perform repetitive behaviors (such as washing, checking or ordering) or mental acts (such as counting or repeating words) to reduce that distress?", yesNo()),
			question("ocd_a3", "Do these thoughts or behaviors take up more than one hour a day?", yesNo()),
			question("ocd_a4", "Do they cause significant distress or interfere with work, school, relationships or daily routines?", yesNo()),
			question("ocd_a5", "Are these symptoms present even when you are not using alcohol, drugs or medication, and are they not better explained by another condition?", yesNo()),
			question("ocd_s1", "How much of your time is occupied by these thoughts or behaviors?", severityScale()),
			question("ocd_s2", "How much do they interfere with your social or work functioning?", severityScale()),
			question("ocd_s3", "How much distress do they cause you?", severityScale()),
			question("ocd_s4", "How hard is it to resist them?", severityScale()),
			question("ocd_s5", "How little control do you feel you have over them?", severityScale()),
		},
	}
}

func postTraumaticStressAdult() models.Instrument {
	return models.Instrument{
		ID:          "ptsd_adult",
		Title:       "Post-Traumatic Stress Disorder",
		Description: "A DSM-5 criterion-based screen for reactions to a frightening or traumatic experience.",
		Icon:        "🛡️",
		Stats:       models.Stats{Questions: 16, Minutes: 5, Rating: "DSM-5 based"},
		Questions: []models.Question{
			question("ptsd_a1", "Have you ever experienced, witnessed or learned about an event involving actual or threatened death, serious injury or sexual violence?", yesNo()),
			question("ptsd_b1", "In the past month, how much have you been bothered by repeated, disturbing and unwanted memories of the experience?", botherScale()),
			question("ptsd_b2", "...repeated, disturbing dreams of the experience?", botherScale()),
			question("ptsd_b3", "...suddenly feeling or acting as if the experience were actually happening again (as if you were back there reliving it)?", botherScale()),
			question("ptsd_c1", "...avoiding memories, thoughts or feelings related to the experience?", botherScale()),
			question("ptsd_c2", "...avoiding external reminders of the experience (people, places, conversations, activities, objects or situations)?", botherScale()),
			question("ptsd_d1", "...having strong negative beliefs about yourself, other people or the world?", botherScale()),
			question("ptsd_d2", "...blaming yourself or someone else for the experience or what happened after it?", botherScale()),
			question("ptsd_d3", "...having strong negative feelings such as fear, horror, anger, guilt or shame?", botherScale()),
			question("ptsd_d4", "...feeling distant or cut off from other people?", botherScale()),
			question("ptsd_e1", "...irritable behavior, angry outbursts or acting aggressively?", botherScale()),
			question("ptsd_e2", "...being 'superalert', watchful or on guard?", botherScale()),
			question("ptsd_e3", "...feeling jumpy or easily startled?", botherScale()),
			question("ptsd_e4", "...having difficulty concentrating or trouble falling or staying asleep?", botherScale()),
			question("ptsd_f1", "Have these difficulties lasted for more than one month?", yesNo()),
			question("ptsd_g1", "Do these difficulties cause significant distress or interfere with work, relationships or other important areas of life?", yesNo()),
		},
	}
}

func anxietyQuickCheck() models.Instrument {
	return models.Instrument{
		ID:          "anxiety",
		Title:       "Anxiety Quick Check",
		Description: "Two brief questions about nervousness and worry over the last two weeks.",
		Icon:        "😟",
		Stats:       models.Stats{Questions: 2, Minutes: 1, Rating: "Quick check"},
		Questions: []models.Question{
			question("anx_1", "Over the last two weeks, how often have you been bothered by feeling nervous, anxious or on edge?", twoWeekFrequency()),
			question("anx_2", "Over the last two weeks, how often have you been bothered by not being able to stop or control worrying?", twoWeekFrequency()),
		},
	}
}
