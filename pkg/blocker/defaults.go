package blocker

// DefaultDomains are ad, analytics and tag-manager hosts blocked unless
// Options.SkipDefaults is set.
var DefaultDomains = []string{
	"2mdn.net",
	"adnxs.com",
	"adsafeprotected.com",
	"adservice.google.com",
	"advertising.com",
	"amazon-adsystem.com",
	"chartbeat.com",
	"criteo.com",
	"criteo.net",
	"demdex.net",
	"doubleclick.net",
	"facebook.net",
	"google-analytics.com",
	"googleadservices.com",
	"googlesyndication.com",
	"googletagmanager.com",
	"googletagservices.com",
	"hotjar.com",
	"moatads.com",
	"mookie1.com",
	"nr-data.net",
	"omtrdc.net",
	"optimizely.com",
	"outbrain.com",
	"pubmatic.com",
	"quantserve.com",
	"rubiconproject.com",
	"scorecardresearch.com",
	"segment.io",
	"taboola.com",
	"tiqcdn.com",
	"yieldmo.com",
}
