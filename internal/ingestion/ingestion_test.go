package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJobTextPrefersJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">
			<h1>ML Engineer</h1>
			<p>Build vision models.</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "ML Engineer")
	assert.Contains(t, text, "Build vision models.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractJobTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p><script>track()</script></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)

	assert.Equal(t, "Plain posting text.", text)
}

func TestFetchJobPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Senior Engineer role.</main></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(0)
	text, err := f.FetchJobPosting(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer role.", text)
}

func TestFetchJobPostingErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(0)

	_, err := f.FetchJobPosting(context.Background(), srv.URL)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")

	_, err = f.FetchJobPosting(context.Background(), "not-a-url")
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}
