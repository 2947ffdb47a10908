package webcontrollers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jd-generator/lib/ai"
	ailogstore "jd-generator/lib/ai/ailog-store"
	filestorage "jd-generator/lib/file-storage"
	formsession "jd-generator/lib/form-session"
	jobdeschandler "jd-generator/lib/jobdesc"
	"jd-generator/models"
	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeAI struct {
	answer string
	err    error
	calls  int
}

func (f *fakeAI) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	f.calls++
	return f.answer, f.err
}

func (f *fakeAI) Name() string  { return "ollama" }
func (f *fakeAI) Model() string { return "test" }

type testClient struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func (c *testClient) post(path string, form url.Values) string {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return c.do(req)
}

func (c *testClient) do(req *http.Request) string {
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			c.cookie = cookie
		}
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return string(body)
}

func setup(t *testing.T, variant models.FormVariant, fake *fakeAI, outPath string) *testClient {
	formsession.Init()
	jobdeschandler.NewHandler(fake, ailogstore.NewInstance(nil), true)
	filestorage.NewHandler(outPath, nil, "")
	profile, ok := jobdescmodels.GetProfile(jobdescmodels.DefaultProfile(variant))
	require.True(t, ok)
	app := fiber.New()
	InitFormRouters(app, profile, variant)
	return &testClient{t: t, app: app}
}

func fullForm() url.Values {
	return url.Values{
		"company_name":    {"Acme"},
		"job_type":        {"Full-time"},
		"experience":      {"Senior"},
		"tech_stack":      {"Go, Postgres"},
		"functionalities": {"Build APIs"},
		"location":        {"Remote"},
		"remark":          {"Visa sponsorship"},
	}
}

func TestSubmitVariant(t *testing.T) {
	t.Run(`render empty form`, func(t *testing.T) {
		client := setup(t, models.FormVariantSubmit, &fakeAI{}, filepath.Join(t.TempDir(), "jd.md"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		body := client.do(req)
		require.Contains(t, body, "What is the company name?")
		require.Contains(t, body, `<option value="Mid-level"`)
		require.Contains(t, body, `value="submit"`)
		require.NotContains(t, body, "Generated Job Description")
	})

	t.Run(`incomplete submit never generates`, func(t *testing.T) {
		fake := &fakeAI{answer: "JD"}
		client := setup(t, models.FormVariantSubmit, fake, filepath.Join(t.TempDir(), "jd.md"))
		form := fullForm()
		form.Set("remark", "")
		form.Set("action", "submit")
		body := client.post("/form", form)
		require.Contains(t, body, msgIncomplete)
		require.Equal(t, 0, fake.calls)
	})

	t.Run(`update without submit does not generate`, func(t *testing.T) {
		fake := &fakeAI{answer: "JD"}
		client := setup(t, models.FormVariantSubmit, fake, filepath.Join(t.TempDir(), "jd.md"))
		body := client.post("/form", fullForm())
		require.Equal(t, 0, fake.calls)
		require.Contains(t, body, `value="Acme"`)
	})

	t.Run(`submit generate and save`, func(t *testing.T) {
		fake := &fakeAI{answer: "<think>x</think>\n# Backend Engineer\n\nBuild APIs."}
		outPath := filepath.Join(t.TempDir(), "jd.md")
		client := setup(t, models.FormVariantSubmit, fake, outPath)

		form := fullForm()
		form.Set("action", "submit")
		body := client.post("/form", form)
		require.Equal(t, 1, fake.calls)
		require.Contains(t, body, msgGenerating)
		require.Contains(t, body, "Generated Job Description")
		require.Contains(t, body, "<h1>Backend Engineer</h1>")

		body = client.post("/form/save", url.Values{})
		require.Contains(t, body, "Job description saved to &#39;"+outPath+"&#39;")
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		require.Equal(t, "# Backend Engineer\n\nBuild APIs.", string(data))
	})

	t.Run(`generation failure shown inline`, func(t *testing.T) {
		fake := &fakeAI{err: errors.New("model not found")}
		client := setup(t, models.FormVariantSubmit, fake, filepath.Join(t.TempDir(), "jd.md"))
		form := fullForm()
		form.Set("action", "submit")
		body := client.post("/form", form)
		require.Contains(t, body, "Error generating job description: model not found")
	})

	t.Run(`save failure then retry`, func(t *testing.T) {
		dir := t.TempDir()
		outPath := filepath.Join(dir, "out", "jd.md")
		client := setup(t, models.FormVariantSubmit, &fakeAI{answer: "JD"}, outPath)

		body := client.post("/form/save", url.Values{})
		require.Contains(t, body, msgNothingSave)

		form := fullForm()
		form.Set("action", "submit")
		client.post("/form", form)

		body = client.post("/form/save", url.Values{})
		require.Contains(t, body, "Failed to save file: ")
		body = client.post("/form/save", url.Values{})
		require.Contains(t, body, "Failed to save file: ")

		require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
		body = client.post("/form/save", url.Values{})
		require.Contains(t, body, "Job description saved to")
	})
}

func TestStaleDescription(t *testing.T) {
	t.Run(`incomplete submit hides previous description`, func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "jd.md")
		client := setup(t, models.FormVariantSubmit, &fakeAI{answer: "Old JD"}, outPath)

		form := fullForm()
		form.Set("action", "submit")
		body := client.post("/form", form)
		require.Contains(t, body, "Old JD")

		form.Set("location", "")
		body = client.post("/form", form)
		require.Contains(t, body, msgIncomplete)
		require.NotContains(t, body, "Generated Job Description")
		require.NotContains(t, body, "Old JD")

		body = client.post("/form/save", url.Values{})
		require.Contains(t, body, msgNothingSave)
		_, err := os.Stat(outPath)
		require.True(t, os.IsNotExist(err))
	})

	t.Run(`auto variant clears description when a field is emptied`, func(t *testing.T) {
		client := setup(t, models.FormVariantAuto, &fakeAI{answer: "Old JD"}, filepath.Join(t.TempDir(), "jd.md"))
		form := url.Values{
			"job_type":        {"Contract"},
			"tech_stack":      {"Rust"},
			"experience":      {"Junior"},
			"functionalities": {"Write services"},
			"location":        {"Berlin"},
		}
		body := client.post("/form", form)
		require.Contains(t, body, "Old JD")

		form.Set("tech_stack", "")
		body = client.post("/form", form)
		require.NotContains(t, body, "Old JD")
	})
}

func TestSessionsIsolated(t *testing.T) {
	t.Run(`second browser does not see first browser values`, func(t *testing.T) {
		fake := &fakeAI{answer: "JD for Acme"}
		first := setup(t, models.FormVariantSubmit, fake, filepath.Join(t.TempDir(), "jd.md"))
		second := &testClient{t: t, app: first.app}

		form := fullForm()
		form.Set("action", "submit")
		body := first.post("/form", form)
		require.Contains(t, body, "JD for Acme")
		require.NotNil(t, first.cookie)

		body = second.do(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotContains(t, body, `value="Acme"`)
		require.NotContains(t, body, "JD for Acme")
		if second.cookie != nil {
			require.NotEqual(t, first.cookie.Value, second.cookie.Value)
		}

		body = first.do(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Contains(t, body, `value="Acme"`)
		require.Contains(t, body, "JD for Acme")
	})
}

func TestAutoVariant(t *testing.T) {
	t.Run(`generation once all fields filled`, func(t *testing.T) {
		fake := &fakeAI{answer: "JD"}
		client := setup(t, models.FormVariantAuto, fake, filepath.Join(t.TempDir(), "jd.md"))

		body := client.post("/form", url.Values{"job_type": {"Contract"}, "tech_stack": {"Rust"}})
		require.Equal(t, 0, fake.calls)
		require.NotContains(t, body, `value="submit"`)
		require.NotContains(t, body, msgIncomplete)

		body = client.post("/form", url.Values{
			"job_type":        {"Contract"},
			"tech_stack":      {"Rust"},
			"experience":      {"Junior"},
			"functionalities": {"Write services"},
			"location":        {"Berlin"},
		})
		require.Equal(t, 1, fake.calls)
		require.Contains(t, body, "Generated Job Description")
	})
}
