package form

import (
	"bytes"
	"html/template"

	"sakha-landing/pkg/models"
)

const (
	// SuccessClass is the class of the confirmation node.
	SuccessClass = "form__success"
	// FailureClass is the class of the notice shown when a request could not be sent.
	FailureClass = "form__failure"
)

const failureHTML = `<div class="form__failure-body"><p>Sorry, we could not send your request. Please try again.</p></div>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div class="form__success-body">
    <h3 class="form__success-title">✓ Thank You!</h3>
    <p>We've received your request. Our team will call you within 24 hours to set up your free trial.</p>
    <p class="form__success-phone">Expected call: {{.Phone}}</p>
</div>
`))

// renderConfirmation returns the HTML shown after an accepted request.
// Field values are escaped.
func renderConfirmation(data models.FormSubmission) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
