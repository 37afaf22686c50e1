package i18n

var messagesEN = map[string]string{
	"error.bad_request":               "Invalid request",
	"error.unauthorized":              "Not logged in or session expired",
	"error.forbidden":                 "You do not have permission for this action",
	"error.not_found":                 "Not found",
	"error.internal":                  "Something went wrong, please try again later",
	"error.method_not_allowed":        "Method not allowed",
	"error.rate_limited":              "Too many requests, retry in %d seconds",
	"error.rate_limit_unavailable":    "Service temporarily unavailable",
	"error.jwt_secret_missing":        "JWT secret is not configured",
	"error.token_invalid":             "Invalid token",
	"error.token_revoked":             "Token revoked, please log in again",
	"error.auth_header_missing":       "Missing Authorization header",
	"error.auth_header_invalid":       "Malformed Authorization header",
	"error.id_required":               "Missing id parameter",
	"error.id_invalid":                "Invalid id parameter",
	"error.name_required":             "Name is required",
	"error.name_exists":               "Name already exists",
	"error.slug_exists":               "Slug already exists",
	"error.hex_code_required":         "Hex code is required",
	"error.hex_code_invalid":          "Invalid hex code, expected #RRGGBB",
	"error.price_invalid":             "Invalid price",
	"error.sale_price_exceeds":        "Sale price must not exceed original price",
	"error.relation_invalid":          "Unknown color, size or category",
	"error.size_invalid":              "Invalid size",
	"error.color_invalid":             "Selected color does not belong to the product",
	"error.product_not_found":         "Product not found",
	"error.product_unavailable":       "Product is not available",
	"error.product_not_customizable":  "Product cannot be customized",
	"error.quantity_invalid":          "Invalid quantity",
	"error.quantity_below_minimum":    "Quantity must be at least 1",
	"error.quantity_above_maximum":    "Quantity exceeds the allowed maximum",
	"error.direction_invalid":         "Direction must be increase or decrease",
	"error.cart_item_not_found":       "Cart item not found",
	"error.cart_empty":                "Cart is empty",
	"error.cart_full":                 "Cart has reached the maximum number of lines",
	"error.wizard_step_invalid":       "Action not allowed at the current step",
	"error.wizard_color_required":     "Please select a color",
	"error.wizard_color_not_allowed":  "Selected color is not allowed",
	"error.wizard_scent_required":     "Please select at least one scent",
	"error.wizard_scent_invalid":      "Invalid scent",
	"error.wizard_scent_limit":        "At most %d scents can be selected",
	"error.wizard_title_required":     "Please enter the label title",
	"error.wizard_title_too_long":     "Label title is too long",
	"error.wizard_logo_size_invalid":  "Logo size must be M or L",
	"error.wizard_approval_required":  "Please approve the design before adding it to the cart",
	"error.customer_name_required":    "Name is required",
	"error.customer_email_invalid":    "Invalid email",
	"error.customer_phone_required":   "Phone is required",
	"error.shipping_address_required": "Shipping address is required",
	"error.order_not_found":           "Order not found",
	"error.order_status_invalid":      "Invalid status transition",
	"error.order_immutable":           "Order is closed and cannot be changed",
	"error.login_failed":              "Wrong username or password",
	"error.captcha_required":          "Captcha is required",
	"error.captcha_invalid":           "Captcha is incorrect",
	"error.password_old_invalid":      "Old password is incorrect",
	"error.password_min_length":       "Password must be at least %d characters",
	"error.password_require_upper":    "Password must contain an uppercase letter",
	"error.password_require_lower":    "Password must contain a lowercase letter",
	"error.password_require_number":   "Password must contain a digit",
	"error.password_require_special":  "Password must contain a special character",
	"error.password_weak":             "Password is too weak",
	"error.user_not_found":            "Customer not found",
	"error.user_email_exists":         "Email already in use",
	"error.user_status_invalid":       "Invalid account status",
	"error.admin_not_found":           "Admin not found",
	"error.role_invalid":              "Invalid role",
	"error.post_not_found":            "Post not found",
	"error.title_required":            "Title is required",
	"error.file_missing":              "Please choose a file",
	"error.file_too_large":            "File is too large",
	"error.file_type_invalid":         "Unsupported file type",
	"error.image_too_large":           "Image dimensions exceed the limit",
	"error.upload_scene_invalid":      "Invalid upload scene",
	"error.upload_failed":             "Upload failed",
	"email.order_status_subject":      "[%s] Order %s: %s",
	"email.order_status_body":         "Hello %s,\n\nYour order %s is now: %s.\nTotal: %s %s\n\nThank you for shopping with Art Exhibition.",
	"email.order_status_lookup_tip":   "You can look up the order with its order number and the email used at checkout.",
	"order.status.pending":            "Pending",
	"order.status.confirmed":          "Confirmed",
	"order.status.shipped":            "Shipped",
	"order.status.delivered":          "Delivered",
	"order.status.cancelled":          "Cancelled",
}
