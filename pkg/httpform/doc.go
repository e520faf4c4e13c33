// Package httpform runs form validation against HTTP requests.
//
// Bind reads an application/x-www-form-urlencoded or multipart/form-data
// request into form.Input values described by Spec declarations. Submit binds,
// registers the inputs on a form, submits it and unregisters them again:
//
//	specs := []httpform.Spec{
//		{Name: "email", Kind: form.KindOther, Rules: "required,email"},
//		{Name: "terms", Kind: form.KindCheckbox, Rules: "checked"},
//		{Name: "avatar", Kind: form.KindFile, Rules: "maxFiles:1,image,maxSize:2MB"},
//	}
//
//	out, err := httpform.Submit(r, f, specs...)
//	if err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
//	if !out.Valid {
//		httpform.WriteErrors(w, out.Errors)
//		return
//	}
//
// Fields of one request share their names with every other request, so each
// request should use its own form.Form.
package httpform
