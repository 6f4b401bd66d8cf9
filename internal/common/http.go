package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	methodsSeparator = ", "

	accessControlAllowOriginHeader  = "Access-Control-Allow-Origin"
	accessControlAllowMethodsHeader = "Access-Control-Allow-Methods"
	accessControlAllowHeadersHeader = "Access-Control-Allow-Headers"
	accessControlExposeHeaders      = "Access-Control-Expose-Headers"
	contentTypeHeader               = "Content-Type"

	jsonContentType = "application/json"

	allowedOrigins = "*"
	allowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Method, Etag, If-None-Match, X-Client-Id"
	exposedHeaders = "Etag"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

// HandlerErrors is the body of every failed response.
type HandlerErrors struct {
	ArgumentErrors map[string]string `json:"argumentErrors,omitempty"`
	GeneralError   string            `json:"generalError"`
}

// CORS returns a middleware allowing cross-origin requests when allowed. Preflight requests are answered directly.
func CORS(allow bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			if !allow {
				next.ServeHTTP(res, req)
				return
			}

			res.Header().Set(accessControlAllowOriginHeader, allowedOrigins)
			res.Header().Set(accessControlExposeHeaders, exposedHeaders)
			if req.Method != http.MethodOptions {
				next.ServeHTTP(res, req)
				return
			}

			res.Header().Set(accessControlAllowMethodsHeader, strings.Join(allowedMethods, methodsSeparator))
			res.Header().Set(accessControlAllowHeadersHeader, allowedHeaders)
			res.WriteHeader(http.StatusNoContent)
		})
	}
}

// WriteJSON writes payload with the status code. Errors are written as HandlerErrors.
func WriteJSON(res http.ResponseWriter, code int, payload interface{}) {
	if err, ok := payload.(error); ok {
		payload = HandlerErrors{GeneralError: err.Error()}
	}

	out, err := json.Marshal(payload)
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		res.Write([]byte(fmt.Sprintf("could not encode json payload: %s\n", err)))

		return
	}

	res.Header().Set(contentTypeHeader, jsonContentType)
	res.WriteHeader(code)
	res.Write(out)
}

// WriteArgumentErrors responds with 400 listing every invalid argument.
func WriteArgumentErrors(res http.ResponseWriter, argErrors map[string]string) {
	WriteJSON(res, http.StatusBadRequest, HandlerErrors{
		ArgumentErrors: argErrors,
		GeneralError:   "invalid arguments",
	})
}

// ReadJSON decodes request body, rejecting unknown fields.
func ReadJSON(req *http.Request, v interface{}) error {
	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

// IntFromQuery returns integer query value or defaultVal when the key is absent.
func IntFromQuery(req *http.Request, key string, defaultVal int) (int, error) {
	value := req.URL.Query().Get(key)
	if value == "" {
		return defaultVal, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid '%s' query value of '%s'", key, value)
	}

	return parsed, nil
}
