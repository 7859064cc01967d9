package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/views/article"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/views/credits"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/views/title"
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/services"
	"github.com/custodia-labs/wik/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Searches and article loads run on background slots. The app polls both
// slots on every tick and hands finished loads to their views, so the
// update loop never waits on the network.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is passed to every background load.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	titleView   *title.View
	searchView  *search.View
	articleView *article.View
	menuView    *menu.View
	creditsView *credits.View

	searchSlot  *services.Slot[string, []domain.SearchResult]
	articleSlot *services.Slot[string, *domain.Article]

	// searchPending and articlePending are set on launch and cleared when
	// the finished load has been handed to its view.
	searchPending  bool
	articlePending bool
	lastQuery      string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// resumeView is where the menu's resume action returns to.
	resumeView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		titleView:   title.NewView(s),
		searchView:  search.NewView(s, km),
		articleView: article.NewView(s, km),
		menuView:    menu.NewView(s),
		creditsView: credits.NewView(s),
		searchSlot:  services.NewSlot(ports.Search.Search),
		articleSlot: services.NewSlot(ports.Article.Article),
		currentView: messages.ViewTitle,
		resumeView:  messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("wik"),
		a.titleView.Init(),
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(messages.PollInterval, func(t time.Time) tea.Msg {
		return messages.Tick(t)
	})
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateCurrent(msg)

	case messages.Tick:
		a.poll()
		return a, tick()

	case messages.SearchRequested:
		return a, a.launchSearch(msg.Query)

	case messages.ArticleRequested:
		a.launchArticle(msg.Title)
		return a, nil

	case messages.MenuOpened:
		a.resumeView = msg.From
		a.menuView.SetOrigin(msg.From)
		a.currentView = messages.ViewMenu
		return a, nil

	case menu.ActionSelected:
		return a, a.dispatch(msg.Action)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewArticle:
			a.articleView, cmd = a.articleView.Update(msg)
		default:
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateCurrent(msg)
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewTitle:
		a.titleView, cmd = a.titleView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewArticle:
		a.articleView, cmd = a.articleView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCredits:
		a.creditsView, cmd = a.creditsView.Update(msg)
	}
	return cmd
}

// dispatch interprets a menu action.
func (a *App) dispatch(action menu.Action) tea.Cmd {
	logger.Debug("Menu action: %s", action)

	switch action {
	case menu.ActionResume:
		a.currentView = a.resumeView
	case menu.ActionNewSearch:
		a.currentView = messages.ViewSearch
		return a.searchView.FocusInput(true)
	case menu.ActionBackToResults:
		a.currentView = messages.ViewSearch
		a.searchView.FocusResults()
	case menu.ActionCredits:
		a.currentView = messages.ViewCredits
	case menu.ActionQuit:
		return tea.Quit
	}
	return nil
}

// launchSearch starts a background search and shows the search screen.
func (a *App) launchSearch(query string) tea.Cmd {
	a.currentView = messages.ViewSearch

	if !a.searchSlot.Launch(a.ctx, query) {
		return a.fail(fmt.Errorf("search %q: %w", query, domain.ErrSlotBusy))
	}

	a.searchPending = true
	a.lastQuery = query
	a.searchView.SetLoading(query)
	return nil
}

// launchArticle starts a background article load and shows the article
// screen.
func (a *App) launchArticle(title string) {
	a.currentView = messages.ViewArticle

	if !a.articleSlot.Launch(a.ctx, title) {
		a.err = fmt.Errorf("article %q: %w", title, domain.ErrSlotBusy)
		a.articleView, _ = a.articleView.Update(messages.ErrorOccurred{Err: a.err})
		return
	}

	a.articlePending = true
	a.articleView.SetLoading(title)
}

// fail records err and shows it on the search screen.
func (a *App) fail(err error) tea.Cmd {
	a.err = err
	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(messages.ErrorOccurred{Err: err})
	return cmd
}

// poll hands finished loads to their views without blocking.
func (a *App) poll() {
	if a.searchPending {
		if st := a.searchSlot.Poll(); !st.Loading() {
			a.searchPending = false
			if st.Err != nil {
				a.err = st.Err
			}
			a.searchView, _ = a.searchView.Update(messages.SearchLoaded{
				Query:   a.lastQuery,
				Results: st.Value,
				Err:     st.Err,
			})
		}
	}

	if a.articlePending {
		if st := a.articleSlot.Poll(); !st.Loading() {
			a.articlePending = false
			if st.Err != nil {
				a.err = st.Err
			}
			a.articleView, _ = a.articleView.Update(messages.ArticleLoaded{
				Article: st.Value,
				Err:     st.Err,
			})
		}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewTitle:
		return a.titleView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewArticle:
		return a.articleView.View()
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewCredits:
		return a.creditsView.View()
	default:
		return a.titleView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.titleView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.articleView.SetDimensions(width, height)
	a.menuView.SetDimensions(width, height)
	a.creditsView.SetDimensions(width, height)
}
