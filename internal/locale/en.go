package locale

func init() {
	Register(Table{
		Code:    "en",
		Name:    "English",
		Title:   "Math Adventure - Knight Edition",
		Tagline: "Good luck!",
		Instructions: []string{
			"Answer math questions correctly,",
			"move forward, and defeat the dragons!",
			"Use mouse to select dragons,",
			"and Enter to submit answers!",
		},
		Start:       "Start",
		QuestionFmt: "Question: %s = ?",
		AnswerFmt:   "Answer: %s",
		ScoreFmt:    "Score: %d",
		StageFmt:    "Stage %d/%d",
		SelectFirst: "First select a dragon!",
		NamePrompt:  "Enter your name: ",
		VictoryFmt:  "VICTORY! Score: %d",
		PlaceFmt:    "%d. %-15s %d points",
		NoScores:    "No saved scores!",
		Mute:        "M",
		Unmute:      "U",
		HelpPlaying: "click: select dragon  enter: submit",
	})
}
