package speller

// Session accumulates a word across calls and rechecks it after every change,
// for callers that feed input a few characters at a time.
// A Session is not safe for concurrent use.
type Session struct {
	checker Checker
	word    string
	result  Result
}

func NewSession(checker Checker) *Session {
	return &Session{checker: checker}
}

// Start replaces the current word and checks it.
func (s *Session) Start(word string) Result {
	s.word = ""
	return s.Append(word)
}

// Append adds text to the current word and checks the result.
func (s *Session) Append(text string) Result {
	s.word += text
	s.result = s.checker.Check(s.word)
	return s.result
}

// Word returns the accumulated input.
func (s *Session) Word() string {
	return s.word
}

// Result returns the last check, zero before the first one.
func (s *Session) Result() Result {
	return s.result
}

func (s *Session) Reset() {
	s.word = ""
	s.result = Result{}
}
