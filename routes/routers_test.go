package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourbooking/config"
	"tourbooking/models"
	"tourbooking/services"
	"tourbooking/services/authsync"
	"tourbooking/testutil"
)

const (
	testSecret   = "test-session-secret-0123456789abcdef"
	testEmail    = "admin@example.com"
	testPassword = "correct horse battery staple"
)

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	svc    *Services
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := &config.Config{
		Env:              "test",
		SessionSecret:    testSecret,
		AdminEmail:       testEmail,
		AdminPassword:    testPassword,
		AppURL:           "https://tours.example.com",
		AuthJWTSecret:    testSecret,
		TranslateTimeout: time.Second,
	}
	if err := config.SeedAdmin(db, cfg); err != nil {
		t.Fatal(err)
	}

	m := melody.New()
	t.Cleanup(func() { m.Close() })

	svc, err := NewServices(cfg, Backends{DB: db, Melody: m}, nil)
	if err != nil {
		t.Fatal(err)
	}
	svc.Auth = services.NewAuthService(services.AuthServiceOptions{
		DB:           db,
		Limiter:      svc.Limiter,
		FailureDelay: time.Millisecond,
	})

	router := gin.New()
	if err := SetupRoutes(router, svc); err != nil {
		t.Fatal(err)
	}
	return &testApp{t: t, db: db, svc: svc, router: router}
}

type envelope struct {
	Code  int             `json:"code"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) json(method, path string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := a.do(req, cookies...)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			a.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, env
}

func (a *testApp) form(path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookies...)
}

func (a *testApp) login() *http.Cookie {
	a.t.Helper()
	w, env := a.json(http.MethodPost, "/api/auth/login", map[string]string{"email": testEmail, "password": testPassword})
	if w.Code != http.StatusOK {
		a.t.Fatalf("login: %d %s", w.Code, env.Error)
	}
	for _, c := range w.Result().Cookies() {
		if c.Value != "" {
			return c
		}
	}
	a.t.Fatal("login set no session cookie")
	return nil
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestDiscountPopupMirrorsOntoTour(t *testing.T) {
	app := newTestApp(t)
	admin := app.login()
	first := testutil.CreateTour(t, app.db, "doi-suthep", 1000)
	second := testutil.CreateTour(t, app.db, "elephant-sanctuary", 2500)

	w, env := app.json(http.MethodPost, "/api/announcements", map[string]interface{}{
		"type":               "popup",
		"popupType":          "discount",
		"messageEn":          "20% off Doi Suthep",
		"isActive":           true,
		"discountTourId":     first.ID,
		"discountPercentage": 20,
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create first popup: %d %s", w.Code, env.Error)
	}
	firstPopup := decode[models.Announcement](t, env.Data)

	_, env = app.json(http.MethodGet, "/api/tours/slug/doi-suthep", nil)
	tour := decode[models.Tour](t, env.Data)
	if !tour.IsDiscountActive || tour.DiscountPercentage != 20 {
		t.Fatalf("tour after activation = active %v pct %d", tour.IsDiscountActive, tour.DiscountPercentage)
	}

	w, env = app.json(http.MethodPost, "/api/announcements", map[string]interface{}{
		"type":               "popup",
		"popupType":          "discount",
		"messageEn":          "15% off the sanctuary",
		"isActive":           true,
		"discountTourId":     second.ID,
		"discountPercentage": 15,
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create second popup: %d %s", w.Code, env.Error)
	}
	secondPopup := decode[models.Announcement](t, env.Data)

	_, env = app.json(http.MethodGet, "/api/tours/slug/doi-suthep", nil)
	if tour = decode[models.Tour](t, env.Data); tour.IsDiscountActive {
		t.Fatal("displaced popup's tour should lose its discount")
	}
	_, env = app.json(http.MethodGet, "/api/tours/slug/elephant-sanctuary", nil)
	if tour = decode[models.Tour](t, env.Data); !tour.IsDiscountActive || tour.DiscountPercentage != 15 {
		t.Fatalf("second tour = active %v pct %d", tour.IsDiscountActive, tour.DiscountPercentage)
	}

	_, env = app.json(http.MethodGet, "/api/announcements/active?locale=en", nil)
	active := decode[struct {
		Popup *struct {
			ID uint `json:"id"`
		} `json:"popup"`
	}](t, env.Data)
	if active.Popup == nil || active.Popup.ID != secondPopup.ID {
		t.Fatalf("active popup = %+v, want %d", active.Popup, secondPopup.ID)
	}

	w, _ = app.json(http.MethodPost, "/api/announcements/"+strconv.Itoa(int(firstPopup.ID))+"/activate", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("re-activate first: %d", w.Code)
	}
	_, env = app.json(http.MethodGet, "/api/tours/slug/elephant-sanctuary", nil)
	if tour = decode[models.Tour](t, env.Data); tour.IsDiscountActive {
		t.Fatal("second tour should be cleared after the first popup is re-activated")
	}
}

func TestAdminAPIRequiresSession(t *testing.T) {
	app := newTestApp(t)

	w, env := app.json(http.MethodPost, "/api/tours", map[string]interface{}{"titleEn": "Night market"})
	if w.Code != http.StatusUnauthorized || env.Code != 0 || env.Error == "" {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w, _ = app.json(http.MethodGet, "/api/bookings", nil, &http.Cookie{Name: "tour_admin_session", Value: "forged"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("forged cookie status = %d", w.Code)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	app := newTestApp(t)

	w, env := app.json(http.MethodPost, "/api/auth/login", map[string]string{"email": testEmail, "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	w2, env2 := app.json(http.MethodPost, "/api/auth/login", map[string]string{"email": "nobody@example.com", "password": "wrong"})
	if w2.Code != http.StatusUnauthorized || env.Error != env2.Error {
		t.Fatalf("unknown email: %d %q vs %q", w2.Code, env2.Error, env.Error)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("failed login must not set a cookie")
	}
}

func TestTourValidationErrors(t *testing.T) {
	app := newTestApp(t)
	admin := app.login()

	w, env := app.json(http.MethodPost, "/api/tours", map[string]interface{}{"descriptionEn": "no title"}, admin)
	if w.Code != http.StatusBadRequest || !strings.Contains(env.Error, "titleEn is required") {
		t.Fatalf("status = %d, error = %q", w.Code, env.Error)
	}

	w, env = app.json(http.MethodPost, "/api/tours", map[string]interface{}{"titleEn": "Old City Walk", "price": "800"}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, env.Error)
	}
	created := decode[models.Tour](t, env.Data)
	if created.Slug != "old-city-walk" {
		t.Fatalf("slug = %q", created.Slug)
	}

	w, _ = app.json(http.MethodPut, "/api/tours/abc", map[string]interface{}{"titleEn": "x"}, admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", w.Code)
	}
	w, _ = app.json(http.MethodDelete, "/api/tours/9999", nil, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing tour delete status = %d", w.Code)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	app := newTestApp(t)
	admin := app.login()
	tour := testutil.CreateTour(t, app.db, "doi-suthep", 900)
	testutil.CreateTour(t, app.db, "river-cruise", 600)

	w, env := app.json(http.MethodPost, "/api/categories", map[string]interface{}{"nameTh": "วัด"}, admin)
	if w.Code != http.StatusBadRequest || !strings.Contains(env.Error, "nameEn is required") {
		t.Fatalf("missing name: %d %q", w.Code, env.Error)
	}

	w, env = app.json(http.MethodPost, "/api/categories", map[string]interface{}{"nameEn": "Temples & Shrines"}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, env.Error)
	}
	category := decode[models.Category](t, env.Data)
	if category.Slug != "temples-shrines" {
		t.Fatalf("slug = %q", category.Slug)
	}

	path := "/api/tours/" + strconv.FormatUint(uint64(tour.ID), 10) + "/categories"
	w, env = app.json(http.MethodPut, path, map[string]interface{}{"categoryIds": []uint{category.ID}}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("set categories: %d %s", w.Code, env.Error)
	}

	w, env = app.json(http.MethodGet, "/api/tours?category=temples-shrines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("filter: %d %s", w.Code, env.Error)
	}
	filtered := decode[[]models.Tour](t, env.Data)
	if len(filtered) != 1 || filtered[0].ID != tour.ID {
		t.Fatalf("filtered = %+v", filtered)
	}

	catPath := "/api/categories/" + strconv.FormatUint(uint64(category.ID), 10)
	w, env = app.json(http.MethodPut, catPath, map[string]interface{}{"nameEn": "Temples"}, admin)
	if w.Code != http.StatusOK || decode[models.Category](t, env.Data).Slug != "temples-shrines" {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}

	w, _ = app.json(http.MethodDelete, catPath, nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	var links int64
	app.db.Model(&models.TourCategory{}).Where("category_id = ?", category.ID).Count(&links)
	if links != 0 {
		t.Fatalf("%d tour links left after delete", links)
	}
	w, _ = app.json(http.MethodDelete, catPath, nil, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", w.Code)
	}
}

func TestBookingAPIAndLookup(t *testing.T) {
	app := newTestApp(t)
	tour := testutil.CreateTour(t, app.db, "khao-sok-lake", 1500)
	travel := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	w, env := app.json(http.MethodPost, "/api/bookings", map[string]interface{}{
		"tourId":       tour.ID,
		"contactName":  "Mali",
		"contactEmail": "mali@example.com",
		"travelDate":   travel,
		"guests":       3,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, env.Error)
	}
	booking := decode[models.Booking](t, env.Data)
	if !booking.TotalPrice.Equal(tour.Price.Mul(decimal.NewFromInt(3))) || booking.Status != "pending" {
		t.Fatalf("booking total = %s status = %s", booking.TotalPrice, booking.Status)
	}

	w, _ = app.json(http.MethodGet, "/api/bookings/lookup?ref="+booking.ReferenceCode+"&email=MALI@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("lookup status = %d", w.Code)
	}
	w, _ = app.json(http.MethodGet, "/api/bookings/lookup?ref="+booking.ReferenceCode+"&email=other@example.com", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("lookup wrong email status = %d", w.Code)
	}

	w, env = app.json(http.MethodPost, "/api/bookings", map[string]interface{}{
		"tourId":       tour.ID,
		"contactName":  "Mali",
		"contactEmail": "mali@example.com",
		"travelDate":   "next week",
		"guests":       1,
	})
	if w.Code != http.StatusBadRequest || !strings.Contains(env.Error, "YYYY-MM-DD") {
		t.Fatalf("bad date: %d %q", w.Code, env.Error)
	}

	admin := app.login()
	w, env = app.json(http.MethodPut, "/api/bookings/"+strconv.Itoa(int(booking.ID)), map[string]string{"status": "confirmed"}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, env.Error)
	}
	w, env = app.json(http.MethodPut, "/api/bookings/"+strconv.Itoa(int(booking.ID)), map[string]string{"status": "pending"}, admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("confirmed -> pending: %d %s", w.Code, env.Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/export", nil)
	w = app.do(req, admin)
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Fatalf("export: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestAuthSyncEndpointDedups(t *testing.T) {
	app := newTestApp(t)
	token, err := app.svc.Tokens.Issue("user-42", "u@example.com", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	var received int
	unsubscribe := app.svc.Hub.Subscribe("user-42", func(authsync.Message) { received++ })
	defer unsubscribe()

	post := func() (int, bool) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/sync", strings.NewReader(`{"type":"SIGNED_OUT"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := app.do(req)
		var env envelope
		json.Unmarshal(w.Body.Bytes(), &env)
		var out struct {
			Delivered bool `json:"delivered"`
		}
		json.Unmarshal(env.Data, &out)
		return w.Code, out.Delivered
	}

	if code, delivered := post(); code != http.StatusOK || !delivered {
		t.Fatalf("first sync = %d %v", code, delivered)
	}
	if code, delivered := post(); code != http.StatusOK || delivered {
		t.Fatalf("duplicate sync = %d %v", code, delivered)
	}
	if received != 1 {
		t.Fatalf("subscriber received %d events, want 1", received)
	}

	w, _ := app.json(http.MethodPost, "/api/auth/sync", map[string]string{"type": "SIGNED_OUT"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d", w.Code)
	}
}

func TestLocalizedPages(t *testing.T) {
	app := newTestApp(t)
	testutil.CreateTour(t, app.db, "floating-market", 900)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	w := app.do(req)
	if w.Code != http.StatusTemporaryRedirect || w.Header().Get("Location") != "/zh" {
		t.Fatalf("root: %d %q", w.Code, w.Header().Get("Location"))
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/th", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `lang="th"`) || !strings.Contains(w.Body.String(), "floating market") {
		t.Fatalf("home: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `hreflang="zh" href="https://tours.example.com/zh"`) {
		t.Fatal("home is missing hreflang alternates")
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/en/tours/floating-market", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "THB 900.00") {
		t.Fatalf("tour page: %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/en/tours/no-such-tour", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing tour: %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/en/nowhere", nil))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `lang="en"`) {
		t.Fatalf("unknown page: %d", w.Code)
	}

	w, _ = app.json(http.MethodGet, "/api/nowhere", nil)
	if w.Code != http.StatusNotFound || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("unknown api: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestBookingForm(t *testing.T) {
	app := newTestApp(t)
	tour := testutil.CreateTour(t, app.db, "railay-kayak", 1200)
	travel := time.Now().AddDate(0, 0, 14).Format("2006-01-02")

	w := app.form("/th/tours/railay-kayak/book", url.Values{
		"tourId":       {strconv.Itoa(int(tour.ID))},
		"contactName":  {"Anan"},
		"contactEmail": {"anan@example.com"},
		"travelDate":   {travel},
		"guests":       {"2"},
	})
	if w.Code != http.StatusSeeOther || !strings.HasPrefix(w.Header().Get("Location"), "/th/booking/BK") {
		t.Fatalf("book: %d %q", w.Code, w.Header().Get("Location"))
	}

	w = app.do(httptest.NewRequest(http.MethodGet, w.Header().Get("Location"), nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "THB 2400.00") {
		t.Fatalf("confirmation: %d", w.Code)
	}

	w = app.form("/en/tours/railay-kayak/book", url.Values{
		"tourId":       {strconv.Itoa(int(tour.ID))},
		"contactName":  {"Anan"},
		"contactEmail": {"not-an-email"},
		"travelDate":   {travel},
		"guests":       {"2"},
	})
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Please check the booking details") {
		t.Fatalf("invalid form: %d", w.Code)
	}
}

func TestBookingFormStoreFailure(t *testing.T) {
	app := newTestApp(t)
	tour := testutil.CreateTour(t, app.db, "phi-phi-day-trip", 1800)
	if err := app.db.Migrator().DropTable(&models.Booking{}); err != nil {
		t.Fatal(err)
	}

	w := app.form("/en/tours/phi-phi-day-trip/book", url.Values{
		"tourId":       {strconv.Itoa(int(tour.ID))},
		"contactName":  {"Mali"},
		"contactEmail": {"mali@example.com"},
		"travelDate":   {time.Now().AddDate(0, 0, 7).Format("2006-01-02")},
		"guests":       {"1"},
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "We could not save your booking") || strings.Contains(body, "Please check the booking details") {
		t.Fatalf("unexpected error message in page")
	}
}

func TestAdminPages(t *testing.T) {
	app := newTestApp(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("dashboard without session: %d %q", w.Code, w.Header().Get("Location"))
	}

	w = app.form("/admin/login", url.Values{"email": {testEmail}, "password": {"nope"}})
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Fatalf("bad login: %d", w.Code)
	}

	w = app.form("/admin/login", url.Values{"email": {testEmail}, "password": {testPassword}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin" {
		t.Fatalf("login: %d %q", w.Code, w.Header().Get("Location"))
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie")
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/admin", nil), cookies...)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), testEmail) {
		t.Fatalf("dashboard: %d", w.Code)
	}

	w = app.form("/admin/logout", nil, cookies...)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("logout: %d", w.Code)
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("logout did not expire the cookie")
	}
}

func TestSitemapAndRobots(t *testing.T) {
	app := newTestApp(t)
	testutil.CreateTour(t, app.db, "white-temple", 700)

	w := app.do(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	body := w.Body.String()
	if w.Code != http.StatusOK || !strings.Contains(body, "https://tours.example.com/th/tours/white-temple") {
		t.Fatalf("sitemap: %d %s", w.Code, body)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Sitemap: https://tours.example.com/sitemap.xml") {
		t.Fatalf("robots: %d", w.Code)
	}
}
