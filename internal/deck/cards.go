package deck

import "github.com/keatonrproud/bad-cards/internal/model"

// PromptCards is the built-in prompt deck. Most prompts take one answer;
// a few take two or three.
var PromptCards = []model.PromptCard{
	{ID: "p1", Text: "A romantic candlelit dinner would be incomplete without ______.", Blanks: 1},
	{ID: "p2", Text: "I got 99 problems but ______ ain't one.", Blanks: 1},
	{ID: "p3", Text: "What's that smell?", Blanks: 1},
	{ID: "p4", Text: "This is the way the world ends: not with a bang, but with ______.", Blanks: 1},
	{ID: "p5", Text: "What never fails to liven up the party?", Blanks: 1},
	{ID: "p6", Text: "TSA guidelines now prohibit ______ on airplanes.", Blanks: 1},
	{ID: "p7", Text: "What's my secret power?", Blanks: 1},
	{ID: "p8", Text: "Instead of coal, Santa now gives the bad children ______.", Blanks: 1},
	{ID: "p9", Text: "Next from ESPN8, the Ocho: The World Series of ______.", Blanks: 1},
	{ID: "p10", Text: "A successful job interview begins with a firm handshake and ends with ______.", Blanks: 1},
	{ID: "p11", Text: "What do old people smell like?", Blanks: 1},
	{ID: "p12", Text: "What gives me uncontrollable gas?", Blanks: 1},
	{ID: "p13", Text: "What would grandma find disturbing, yet oddly charming?", Blanks: 1},
	{ID: "p14", Text: "What is Batman's guilty pleasure?", Blanks: 1},
	{ID: "p15", Text: "Coming to Broadway this season, ______: The Musical.", Blanks: 1},
	{ID: "p16", Text: "War! What is it good for?", Blanks: 1},
	{ID: "p17", Text: "What's the next Happy Meal toy?", Blanks: 1},
	{ID: "p18", Text: "What ended my last relationship?", Blanks: 1},
	{ID: "p19", Text: "MTV's new reality show features eight washed-up celebrities living with ______.", Blanks: 1},
	{ID: "p20", Text: "What's there a ton of in heaven?", Blanks: 1},
	{ID: "p21", Text: "Major League Baseball has banned ______ for giving players an unfair advantage.", Blanks: 1},
	{ID: "p22", Text: "Studies show that lab rats navigate mazes 50% faster after being exposed to ______.", Blanks: 1},
	{ID: "p23", Text: "What did I bring back from Mexico?", Blanks: 1},
	{ID: "p24", Text: "Lifetime presents ______: The Story of ______.", Blanks: 2},
	{ID: "p25", Text: "Make a haiku.", Blanks: 3},
	{ID: "p26", Text: "______. Betcha can't have just one!", Blanks: 1},
	{ID: "p27", Text: "In 1,000 years, when paper money is but a distant memory, ______ will be our currency.", Blanks: 1},
	{ID: "p28", Text: "What's the most emo?", Blanks: 1},
	{ID: "p29", Text: "During sex, I like to think about ______.", Blanks: 1},
	{ID: "p30", Text: "______: kid-tested, mother-approved.", Blanks: 1},
}

// AnswerCards is the built-in answer deck.
var AnswerCards = []model.AnswerCard{
	{ID: "a1", Text: "Vigorous jazz hands"},
	{ID: "a2", Text: "Cuddling"},
	{ID: "a3", Text: "Genghis Khan"},
	{ID: "a4", Text: "A thermonuclear detonation"},
	{ID: "a5", Text: "Ben Stein"},
	{ID: "a6", Text: "Heartwarming orphans"},
	{ID: "a7", Text: "An asymmetric bob"},
	{ID: "a8", Text: "Absolutely nothing"},
	{ID: "a9", Text: "A bag of magic beans"},
	{ID: "a10", Text: "Chainsaws for hands"},
	{ID: "a11", Text: "Robert Downey Jr."},
	{ID: "a12", Text: "Switching to Geico"},
	{ID: "a13", Text: "Jibber-jabber"},
	{ID: "a14", Text: "Dead parents"},
	{ID: "a15", Text: "Nazis"},
	{ID: "a16", Text: "My boyfriend's stupid face"},
	{ID: "a17", Text: "Agriculture"},
	{ID: "a18", Text: "A falcon with a cap on its head"},
	{ID: "a19", Text: "Natural selection"},
	{ID: "a20", Text: "Sexy pillow fights"},
	{ID: "a21", Text: "Inappropriate yodeling"},
	{ID: "a22", Text: "A mopey zoo lion"},
	{ID: "a23", Text: "A big hoopla about nothing"},
	{ID: "a24", Text: "All-you-can-eat shrimp for $4.99"},
	{ID: "a25", Text: "Rushing the field"},
	{ID: "a26", Text: "A windmill full of corpses"},
	{ID: "a27", Text: "My humps"},
	{ID: "a28", Text: "Gandhi"},
	{ID: "a29", Text: "The invisible hand"},
	{ID: "a30", Text: "A really cool hat"},
	{ID: "a31", Text: "Repression"},
	{ID: "a32", Text: "New Age music"},
	{ID: "a33", Text: "Grandma"},
	{ID: "a34", Text: "Hot cheese"},
	{ID: "a35", Text: "Phone sex"},
	{ID: "a36", Text: "The chronic"},
	{ID: "a37", Text: "Full frontal nudity"},
	{ID: "a38", Text: "Man meat"},
	{ID: "a39", Text: "Cockfighting"},
	{ID: "a40", Text: "Getting really high"},
	{ID: "a41", Text: "A lifetime of sadness"},
	{ID: "a42", Text: "The Force"},
	{ID: "a43", Text: "Puppies!"},
	{ID: "a44", Text: "Flying sex snakes"},
	{ID: "a45", Text: "Former President George W. Bush"},
	{ID: "a46", Text: "The Rapture"},
	{ID: "a47", Text: "Nickelback"},
	{ID: "a48", Text: "Waking up half-naked in a Denny's parking lot"},
	{ID: "a49", Text: "Kamikaze pilots"},
	{ID: "a50", Text: "Pretending to care"},
	{ID: "a51", Text: "A sad handjob"},
	{ID: "a52", Text: "The American Dream"},
	{ID: "a53", Text: "Object permanence"},
	{ID: "a54", Text: "The miracle of childbirth"},
	{ID: "a55", Text: "Seventy-two virgins"},
	{ID: "a56", Text: "Science"},
	{ID: "a57", Text: "Friendly fire"},
	{ID: "a58", Text: "A tiny horse"},
	{ID: "a59", Text: "An honest cop with nothing left to lose"},
	{ID: "a60", Text: "The Big Bang"},
}
