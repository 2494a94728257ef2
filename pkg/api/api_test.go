package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestReadResponse(t *testing.T) {
	Convey("Given a successful response", t, func() {
		body, err := ReadResponse("weather", response(http.StatusOK, `{"ok":true}`))

		Convey("It should return the body untouched", func() {
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"ok":true}`)
		})
	})

	Convey("Given a WeatherAPI style error", t, func() {
		_, err := ReadResponse("weather", response(http.StatusUnauthorized,
			`{"error":{"code":2006,"message":"API key is invalid."}}`))

		Convey("It should produce an APIError with the vendor message", func() {
			var apiErr *APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.StatusCode, ShouldEqual, http.StatusUnauthorized)
			So(apiErr.Message, ShouldEqual, "API key is invalid.")
			So(err.Error(), ShouldEqual, "weather API returned status 401: API key is invalid.")
		})
	})

	Convey("Given a Brave style error", t, func() {
		_, err := ReadResponse("brave", response(http.StatusUnprocessableEntity,
			`{"type":"ErrorResponse","error":{"code":"VALIDATION","detail":"Unable to validate request parameter(s)."}}`))

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Message, ShouldEqual, "Unable to validate request parameter(s).")
	})

	Convey("Given a plain text error", t, func() {
		_, err := ReadResponse("groundx", response(http.StatusBadGateway, "bad gateway\n"))

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Message, ShouldEqual, "bad gateway")
	})

	Convey("Given an error without a body", t, func() {
		_, err := ReadResponse("groundx", response(http.StatusInternalServerError, ""))
		So(err.Error(), ShouldEqual, "groundx API returned status 500")
	})
}
