package model

// PromptCard is the fill-in-the-blank card read aloud each round.
type PromptCard struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Blanks int    `json:"blanks"`
}

// AnswerCard is a card players submit to fill a prompt's blanks.
type AnswerCard struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
