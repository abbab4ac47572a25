package textgensvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
)

const geminiHost = "https://generativelanguage.googleapis.com"

type geminiService struct {
	host   string
	key    string
	model  string
	client *http.Client
}

var _ core.TextGenerator = (*geminiService)(nil)

// NewGeminiService returns a TextGenerator backed by the Gemini REST API.
// With no API key configured the service reports itself disabled and no
// requests are ever attempted.
func NewGeminiService(conf *core.Config) core.TextGenerator {
	return &geminiService{
		host:   geminiHost,
		key:    conf.Gemini.APIKey,
		model:  conf.Gemini.Model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (svc *geminiService) Enabled() bool {
	return svc.key != ""
}

type (
	generateRequest struct {
		Contents []content `json:"contents"`
	}
	content struct {
		Parts []part `json:"parts"`
	}
	part struct {
		Text string `json:"text"`
	}

	generateResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func (svc *geminiService) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "marshalling request")
	}

	url := svc.host + "/v1beta/models/" + svc.model + ":generateContent?key=" + svc.key
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling generateContent")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("generateContent: status %d: %s", resp.StatusCode, data)
	}

	var genResp generateResponse
	if err := json.Unmarshal(data, &genResp); err != nil {
		return "", errors.Wrap(err, "unmarshalling response")
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty generateContent response")
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
