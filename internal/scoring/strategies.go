package scoring

import "github.com/harrison/screener/internal/models"

// belowThreshold is the label every criterion strategy uses when its gates or
// symptom counts are not met.
const belowThreshold = "Below diagnostic threshold"

// DefaultStrategies returns the dispatch table for the built-in criterion
// instruments. Instruments not listed use the percentage fallback.
func DefaultStrategies() map[string]Strategy {
	return map[string]Strategy{
		"mdd_adult":      majorDepression(),
		"gad_adult":      generalizedAnxiety(),
		"adhd_adult":     adhd(),
		"ptsd_adult":     ptsd(),
		"bipolar_screen": bipolar(),
		"ocd_adult":      ocd(),
	}
}

func majorDepression() *criterionStrategy {
	return &criterionStrategy{
		gates: []string{"mdd_a10", "mdd_a11", "mdd_a12"},
		groups: []group{
			{name: "core", items: []string{"mdd_a1", "mdd_a2"}, min: 1},
			{name: "symptoms", items: ids("mdd_a", 1, 9), min: 5},
		},
		subscore: ids("mdd_a", 1, 9),
		grade: graded(6, 7,
			outcome{
				label:    "Mild Major Depressive Disorder suggested",
				severity: models.SeverityMild,
				recommendations: []string{
					"Your answers match the screening pattern for mild major depression; only a clinical evaluation can confirm it.",
					"Schedule an evaluation with a mental health professional within the next few weeks.",
					"Cognitive behavioral therapy (CBT) and behavioral activation are effective first steps for mild depression.",
				},
			},
			outcome{
				label:    "Moderate Major Depressive Disorder suggested",
				severity: models.SeverityModerate,
				recommendations: []string{
					"Your answers match the screening pattern for moderate major depression; only a clinical evaluation can confirm it.",
					"Schedule an evaluation with a mental health professional within the next one to two weeks.",
					"Psychotherapy such as CBT or interpersonal therapy, with or without medication, is effective for moderate depression.",
				},
			},
			outcome{
				label:    "Severe Major Depressive Disorder suggested",
				severity: models.SeveritySevere,
				recommendations: []string{
					"Your answers match the screening pattern for severe major depression; only a clinical evaluation can confirm it.",
					"Seek a professional evaluation as soon as possible. If you are thinking about harming yourself, contact a crisis line or emergency services now.",
					"Severe depression usually responds best to combined psychotherapy and medication management.",
				},
			},
		),
		negative: outcome{
			label:    belowThreshold,
			severity: models.SeverityNone,
			recommendations: []string{
				"Your answers do not meet the screening pattern for major depression.",
				"If low mood or loss of interest continues or gets worse, repeat this screen or talk with a professional.",
				"Regular sleep, physical activity and time with supportive people help protect mood.",
			},
		},
	}
}

func generalizedAnxiety() *criterionStrategy {
	return &criterionStrategy{
		gates: []string{"gad_a1", "gad_a2", "gad_a9", "gad_a10"},
		groups: []group{
			{name: "symptoms", items: ids("gad_a", 3, 8), min: 3},
		},
		grade: graded(7, 12,
			outcome{
				label:    "Mild Generalized Anxiety Disorder suggested",
				severity: models.SeverityMild,
				recommendations: []string{
					"Your answers match the screening pattern for mild generalized anxiety; only a clinical evaluation can confirm it.",
					"Consider scheduling an evaluation with a mental health professional in the coming weeks.",
					"Cognitive behavioral therapy (CBT) and relaxation training are well supported for generalized anxiety.",
				},
			},
			outcome{
				label:    "Moderate Generalized Anxiety Disorder suggested",
				severity: models.SeverityModerate,
				recommendations: []string{
					"Your answers match the screening pattern for moderate generalized anxiety; only a clinical evaluation can confirm it.",
					"Schedule an evaluation with a mental health professional within the next one to two weeks.",
					"CBT is a first-line treatment, and medication may be discussed as part of an evaluation.",
				},
			},
			outcome{
				label:    "Severe Generalized Anxiety Disorder suggested",
				severity: models.SeveritySevere,
				recommendations: []string{
					"Your answers match the screening pattern for severe generalized anxiety; only a clinical evaluation can confirm it.",
					"Seek a professional evaluation as soon as possible.",
					"Combined psychotherapy and medication management is often recommended for severe anxiety.",
				},
			},
		),
		negative: outcome{
			label:    belowThreshold,
			severity: models.SeverityNone,
			recommendations: []string{
				"Your answers do not meet the screening pattern for generalized anxiety disorder.",
				"If worry becomes harder to control or starts to affect daily life, repeat this screen or talk with a professional.",
				"Breathing exercises, limiting caffeine and regular activity can reduce everyday anxiety.",
			},
		},
	}
}

var (
	adhdCombined = outcome{
		label:    "ADHD, Combined Presentation suggested",
		severity: models.SeverityHigh,
		recommendations: []string{
			"Your answers match the screening pattern for ADHD with both inattentive and hyperactive-impulsive symptoms.",
			"A comprehensive evaluation, including developmental history, is needed to confirm ADHD in adults.",
			"Treatment options include stimulant or non-stimulant medication, ADHD coaching and CBT for adult ADHD.",
		},
	}
	adhdInattentive = outcome{
		label:    "ADHD, Predominantly Inattentive Presentation suggested",
		severity: models.SeverityModerate,
		recommendations: []string{
			"Your answers match the screening pattern for ADHD with mainly inattentive symptoms.",
			"A comprehensive evaluation, including developmental history, is needed to confirm ADHD in adults.",
			"Organizational skills training, CBT for adult ADHD and medication are all evidence-based options.",
		},
	}
	adhdHyperactive = outcome{
		label:    "ADHD, Predominantly Hyperactive-Impulsive Presentation suggested",
		severity: models.SeverityModerate,
		recommendations: []string{
			"Your answers match the screening pattern for ADHD with mainly hyperactive-impulsive symptoms.",
			"A comprehensive evaluation, including developmental history, is needed to confirm ADHD in adults.",
			"Medication and behavioral strategies for impulse control are evidence-based options.",
		},
	}
)

func adhd() *criterionStrategy {
	return &criterionStrategy{
		gates: []string{"adhd_a13", "adhd_a14", "adhd_a15"},
		groups: []group{
			{name: "inattention", items: ids("adhd_a", 1, 6), min: 4},
			{name: "hyperactivity", items: ids("adhd_a", 7, 12), min: 4},
		},
		anyGroup: true,
		grade: func(t tally) outcome {
			switch {
			case t.met["inattention"] && t.met["hyperactivity"]:
				return adhdCombined
			case t.met["inattention"]:
				return adhdInattentive
			default:
				return adhdHyperactive
			}
		},
		negative: outcome{
			label:    belowThreshold,
			severity: models.SeverityNone,
			recommendations: []string{
				"Your answers do not meet the screening pattern for adult ADHD.",
				"Attention and focus can also be affected by sleep, stress, anxiety and mood; other checks in this catalog may help.",
				"If difficulties persist, a professional can help sort out what is contributing.",
			},
		},
	}
}

func ptsd() *criterionStrategy {
	var symptoms []string
	symptoms = append(symptoms, ids("ptsd_b", 1, 3)...)
	symptoms = append(symptoms, ids("ptsd_c", 1, 2)...)
	symptoms = append(symptoms, ids("ptsd_d", 1, 4)...)
	symptoms = append(symptoms, ids("ptsd_e", 1, 4)...)

	return &criterionStrategy{
		gates: []string{"ptsd_a1", "ptsd_f1", "ptsd_g1"},
		groups: []group{
			{name: "intrusion", items: ids("ptsd_b", 1, 3), min: 1},
			{name: "avoidance", items: ids("ptsd_c", 1, 2), min: 1},
			{name: "mood", items: ids("ptsd_d", 1, 4), min: 2},
			{name: "arousal", items: ids("ptsd_e", 1, 4), min: 2},
		},
		subscore: symptoms,
		grade: graded(16, 30,
			outcome{
				label:    "Mild Post-Traumatic Stress Disorder suggested",
				severity: models.SeverityMild,
				recommendations: []string{
					"Your answers match the screening pattern for mild post-traumatic stress; only a clinical evaluation can confirm it.",
					"Consider scheduling an evaluation with a trauma-informed mental health professional.",
					"Trauma-focused therapies such as cognitive processing therapy (CPT) and prolonged exposure (PE) are well supported.",
				},
			},
			outcome{
				label:    "Moderate Post-Traumatic Stress Disorder suggested",
				severity: models.SeverityModerate,
				recommendations: []string{
					"Your answers match the screening pattern for moderate post-traumatic stress; only a clinical evaluation can confirm it.",
					"Schedule an evaluation with a trauma-informed professional within the next one to two weeks.",
					"CPT, PE and EMDR are evidence-based treatments for PTSD.",
				},
			},
			outcome{
				label:    "Severe Post-Traumatic Stress Disorder suggested",
				severity: models.SeveritySevere,
				recommendations: []string{
					"Your answers match the screening pattern for severe post-traumatic stress; only a clinical evaluation can confirm it.",
					"Seek a professional evaluation as soon as possible.",
					"Trauma-focused psychotherapy, sometimes combined with medication, is recommended for severe PTSD.",
				},
			},
		),
		negative: outcome{
			label:    belowThreshold,
			severity: models.SeverityNone,
			recommendations: []string{
				"Your answers do not meet the screening pattern for post-traumatic stress disorder.",
				"Distress after a difficult experience is common; support from trusted people and routine can help.",
				"If reactions to the experience persist or intensify, talk with a professional.",
			},
		},
	}
}

func bipolar() *criterionStrategy {
	return &criterionStrategy{
		gates: []string{"bp_10", "bp_11"},
		groups: []group{
			{name: "symptoms", items: ids("bp_", 1, 9), min: 6},
		},
		grade: single(outcome{
			label:    "Bipolar Spectrum Disorder suggested",
			severity: models.SeverityHigh,
			recommendations: []string{
				"Your answers match the screening pattern for a bipolar spectrum condition; only a clinical evaluation can confirm it.",
				"Schedule an evaluation with a psychiatrist, and mention this result if you are being treated for depression.",
				"Mood stabilizing medication and psychoeducation, together with psychotherapy, are the mainstays of treatment.",
			},
		}),
		negative: outcome{
			label:    belowThreshold,
			severity: models.SeverityNone,
			recommendations: []string{
				"Your answers do not meet the screening pattern for a bipolar spectrum condition.",
				"If you notice periods of unusually high energy, little need for sleep or racing thoughts, note when they happen.",
				"Share any concerns about mood swings with a professional.",
			},
		},
	}
}

func ocd() *criterionStrategy {
	return &criterionStrategy{
		gates: []string{"ocd_a5"},
		groups: []group{
			{name: "symptoms", items: []string{"ocd_a1", "ocd_a2"}, min: 1},
			{name: "burden", items: []string{"ocd_a3", "ocd_a4"}, min: 1},
		},
		subscore: ids("ocd_s", 1, 5),
		grade: graded(7, 13,
			outcome{
				label:    "Mild Obsessive-Compulsive Disorder suggested",
				severity: models.SeverityMild,
				recommendations: []string{
					"Your answers match the screening pattern for mild obsessive-compulsive symptoms; only a clinical evaluation can confirm it.",
					"Consider scheduling an evaluation with a mental health professional.",
					"Exposure and response prevention (ERP) is the most effective psychotherapy for OCD.",
				},
			},
			outcome{
				label:    "Moderate Obsessive-Compulsive Disorder suggested",
				severity: models.SeverityModerate,
				recommendations: []string{
					"Your answers match the screening pattern for moderate obsessive-compulsive symptoms; only a clinical evaluation can confirm it.",
					"Schedule an evaluation with a mental health professional within the next few weeks.",
					"ERP, with or without SSRI medication, is the recommended treatment for OCD.",
				},
			},
			outcome{
				label:    "Severe Obsessive-Compulsive Disorder suggested",
				severity: models.SeveritySevere,
				recommendations: []string{
					"Your answers match the screening pattern for severe obsessive-compulsive symptoms; only a clinical evaluation can confirm it.",
					"Seek a professional evaluation as soon as possible.",
					"Severe OCD is usually treated with intensive ERP combined with medication management.",
				},
			},
		),
		negative: outcome{
			label:    belowThreshold,
			severity: models.SeverityNone,
			recommendations: []string{
				"Your answers do not meet the screening pattern for obsessive-compulsive disorder.",
				"Occasional intrusive thoughts are common and not a sign of OCD on their own.",
				"If thoughts or rituals start taking more time or causing distress, talk with a professional.",
			},
		},
	}
}
