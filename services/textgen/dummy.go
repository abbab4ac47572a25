package textgensvc

import (
	"context"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
)

// DummyService is a TextGenerator for DEV and tests. It records every prompt
// and returns a canned response, or Err when set.
type DummyService struct {
	Response string
	Err      error
	Disabled bool
	Prompts  []string
}

var _ core.TextGenerator = (*DummyService)(nil)

func NewDummyService(response string) *DummyService {
	return &DummyService{Response: response}
}

func (svc *DummyService) Enabled() bool {
	return !svc.Disabled
}

func (svc *DummyService) Generate(_ context.Context, prompt string) (string, error) {
	svc.Prompts = append(svc.Prompts, prompt)
	if svc.Err != nil {
		return "", svc.Err
	}
	return svc.Response, nil
}
