package browser

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// events records teardown ordering across fakes.
type events struct {
	mu  sync.Mutex
	log []string
}

func (e *events) add(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = append(e.log, s)
}

func (e *events) list() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.log...)
}

// fakePage overrides only the methods a session calls; anything else panics
// on the nil embedded interface.
type fakePage struct {
	playwright.Page

	events     *events
	timeout    float64
	gotoURL    string
	gotoOpts   []playwright.PageGotoOptions
	resp       playwright.Response
	gotoErr    error
	closeErr   error
	closeCalls int
}

func (p *fakePage) SetDefaultNavigationTimeout(timeout float64) {
	p.timeout = timeout
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.gotoURL = url
	p.gotoOpts = options
	p.events.add("goto")
	if p.gotoErr != nil {
		return nil, p.gotoErr
	}
	return p.resp, nil
}

func (p *fakePage) Close(options ...playwright.PageCloseOptions) error {
	p.closeCalls++
	p.events.add("close")
	return p.closeErr
}

type fakeResponse struct {
	playwright.Response
	status int
}

func (r *fakeResponse) Status() int { return r.status }

type fakeBrowser struct {
	page    *fakePage
	err     error
	opts    []playwright.BrowserNewPageOptions
	newPage int
}

func (b *fakeBrowser) NewPage(options ...playwright.BrowserNewPageOptions) (playwright.Page, error) {
	b.newPage++
	b.opts = append(b.opts, options...)
	if b.err != nil {
		return nil, b.err
	}
	return b.page, nil
}

type fakeBlocker struct {
	events        *events
	engageErr     error
	disengageErr  error
	panicOnRemove bool
	engaged       int
	disengaged    int
}

func (b *fakeBlocker) Engage(page playwright.Page) error {
	b.engaged++
	b.events.add("engage")
	return b.engageErr
}

func (b *fakeBlocker) Disengage(page playwright.Page) error {
	b.disengaged++
	b.events.add("disengage")
	if b.panicOnRemove {
		panic("blocker exploded")
	}
	return b.disengageErr
}

type fakeLogger struct {
	messages []string
	panics   bool
}

func (l *fakeLogger) Errorf(format string, v ...interface{}) {
	if l.panics {
		panic("logger exploded")
	}
	l.messages = append(l.messages, fmt.Sprintf(format, v...))
}

func newFixture() (*events, *fakePage, *fakeBrowser, *fakeBlocker, *fakeLogger) {
	ev := &events{}
	page := &fakePage{events: ev}
	return ev, page, &fakeBrowser{page: page}, &fakeBlocker{events: ev}, &fakeLogger{}
}
