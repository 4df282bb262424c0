package fetch

import (
	"net/http/cookiejar"
	"time"

	"fantasyolympics-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

type ClientOptions struct {
	// requests per second against the upstream, 0 disables limiting
	RatePerSecond float64
	UserAgent     string
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36 (FantasyOlympics/1.0)"

// NewClient builds the http client used against upstream result
// sources. olympics.com sits behind an anti-bot proxy, hence the
// bypass transport and browser user-agent.
func NewClient(opts ClientOptions) *resty.Client {
	client := resty.New()

	jar, err := cookiejar.New(nil)
	if err == nil {
		client.SetCookieJar(jar)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept-language", "en-US,en;q=0.9")
	client.SetHeader("cache-control", "no-cache")
	client.SetTimeout(time.Second * 30)

	if opts.RatePerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(opts.RatePerSecond), 2)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(client, "fetch/http")

	return client
}
