//go:build js && wasm

// Command wasm binds the callback form controllers to the landing page.
package main

import (
	"context"
	"syscall/js"
	"time"

	"go.uber.org/zap"

	"sakha-landing/pkg/config"
	"sakha-landing/pkg/dom/jsdom"
	"sakha-landing/pkg/form"
	"sakha-landing/pkg/logger"
	"sakha-landing/pkg/share"
)

func main() {
	cfg := config.Default()

	page, ok := jsdom.FormByID("cta-form")
	cfg.Env = dataOr(page, ok, "env", cfg.Env)
	log := logger.Must("landing", cfg.Env)

	bindShare(log)
	bindCallLinks(log)

	if !ok {
		log.Warn("callback form not found on page")
		select {}
	}

	if ttl, err := time.ParseDuration(page.Data("confirmationTtl")); err == nil && ttl > 0 {
		cfg.Landing.ConfirmationTTL = ttl
	}

	field, ok := page.Field(form.FieldPhone)
	if !ok {
		log.Warn("phone field not found on page")
		select {}
	}
	phoneInput := field.(jsdom.Field)

	phoneCtl := form.NewPhoneFieldController(phoneInput, log)
	submitCtl := form.NewFormSubmissionController(page, phoneCtl, form.Options{
		ConfirmationTTL: cfg.Landing.ConfirmationTTL,
		Logger:          log,
	})

	jsdom.On(phoneInput.JSValue(), "input", func(js.Value) { phoneCtl.HandleInput() })
	jsdom.On(phoneInput.JSValue(), "blur", func(js.Value) { phoneCtl.HandleBlur() })
	jsdom.On(page.JSValue(), "submit", func(ev js.Value) {
		ev.Call("preventDefault")
		if _, err := submitCtl.HandleSubmit(context.Background()); err != nil {
			log.Debug("callback form not submitted", zap.Error(err))
		}
	})
	jsdom.On(js.Global(), "pagehide", func(js.Value) { submitCtl.Close() })

	for _, f := range page.Fields() {
		tracker := form.NewFocusTracker(f)
		node := f.(jsdom.Field).JSValue()
		jsdom.On(node, "focus", func(js.Value) { tracker.HandleFocus() })
		jsdom.On(node, "blur", func(js.Value) { tracker.HandleBlur() })
	}

	log.Info("landing page bound", zap.Duration("confirmation_ttl", cfg.Landing.ConfirmationTTL))
	select {}
}

func bindShare(log *zap.Logger) {
	btn := js.Global().Get("document").Call("getElementById", "whatsapp-share")
	if btn.IsNull() {
		return
	}
	jsdom.On(btn, "click", func(js.Value) {
		href := js.Global().Get("location").Get("href").String()
		js.Global().Call("open", share.WhatsAppURL(href), "_blank")
		log.Debug("whatsapp share opened")
	})
}

func bindCallLinks(log *zap.Logger) {
	calls := share.NewCallLogger(log)
	links := js.Global().Get("document").Call("querySelectorAll", `a[href^="tel:"]`)
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		jsdom.On(link, "click", func(js.Value) {
			calls.HandleClick(link.Call("getAttribute", "href").String())
		})
	}
}

func dataOr(page *jsdom.Form, ok bool, key, def string) string {
	if !ok {
		return def
	}
	if v := page.Data(key); v != "" {
		return v
	}
	return def
}
