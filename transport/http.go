package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	formapp "github.com/botfut/botfut/application/form"
	maskapp "github.com/botfut/botfut/application/mask"
	userapp "github.com/botfut/botfut/application/user"
	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/utils/errors"
	validatorx "github.com/botfut/botfut/utils/validator"
)

type RestHandler struct {
	UserApp userapp.UserApp
	MaskApp maskapp.MaskApp
	FormApp formapp.FormApp
}

// Options configures NewTransport.
type Options struct {
	InternalAPIKey string
}

func NewTransport(UserApp userapp.UserApp, MaskApp maskapp.MaskApp, FormApp formapp.FormApp, opts Options) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp: UserApp,
		MaskApp: MaskApp,
		FormApp: FormApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/v1/mask/{kind}", rh.Mask).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/v1/forms/{kind}/normalize", rh.NormalizeForm).Methods(http.MethodPost)
	mux.HandleFunc("/v1/forms/{kind}/draft", rh.SaveDraft).Methods(http.MethodPut)
	mux.HandleFunc("/v1/forms/{kind}/draft", rh.GetDraft).Methods(http.MethodGet)
	mux.HandleFunc("/v1/forms/{kind}/draft", rh.DeleteDraft).Methods(http.MethodDelete)
	mux.HandleFunc("/v1/forms/{kind}/submit", rh.SubmitForm).Methods(http.MethodPost)
	mux.HandleFunc("/v1/submissions", rh.ListSubmissions).Methods(http.MethodGet)

	// internal routes, called by the delivery consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/operators/{id:[0-9]+}/workspaces", rh.AddWorkspace).Methods(http.MethodPost)
	internal.HandleFunc("/submissions/{id:[0-9]+}", rh.GetSubmissionStatus).Methods(http.MethodGet)
	internal.HandleFunc("/submissions/{id:[0-9]+}/delivered", rh.MarkDelivered).Methods(http.MethodPost)
	internal.HandleFunc("/submissions/{id:[0-9]+}/failed", rh.MarkFailed).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register operator
// @Description Register a new operator. The phone may be typed with or without mask.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login operator
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
