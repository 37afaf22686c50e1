package i18n

var messagesVI = map[string]string{
	"error.bad_request":               "Yêu cầu không hợp lệ",
	"error.unauthorized":              "Chưa đăng nhập hoặc phiên đã hết hạn",
	"error.forbidden":                 "Bạn không có quyền thực hiện thao tác này",
	"error.not_found":                 "Không tìm thấy dữ liệu",
	"error.internal":                  "Đã xảy ra lỗi, vui lòng thử lại sau",
	"error.method_not_allowed":        "Phương thức không được hỗ trợ",
	"error.rate_limited":              "Bạn thao tác quá nhanh, vui lòng thử lại sau %d giây",
	"error.rate_limit_unavailable":    "Dịch vụ tạm thời không khả dụng",
	"error.jwt_secret_missing":        "Máy chủ chưa cấu hình khóa JWT",
	"error.token_invalid":             "Token không hợp lệ",
	"error.token_revoked":             "Token đã bị thu hồi, vui lòng đăng nhập lại",
	"error.auth_header_missing":       "Thiếu header Authorization",
	"error.auth_header_invalid":       "Header Authorization không đúng định dạng",
	"error.id_required":               "Thiếu tham số id",
	"error.id_invalid":                "Tham số id không hợp lệ",
	"error.name_required":             "Tên là bắt buộc",
	"error.name_exists":               "Tên đã tồn tại",
	"error.slug_exists":               "Đường dẫn (slug) đã tồn tại",
	"error.hex_code_required":         "Mã màu là bắt buộc",
	"error.hex_code_invalid":          "Mã màu không hợp lệ, định dạng #RRGGBB",
	"error.price_invalid":             "Giá không hợp lệ",
	"error.sale_price_exceeds":        "Giá khuyến mãi không được lớn hơn giá gốc",
	"error.relation_invalid":          "Màu, kích thước hoặc danh mục không tồn tại",
	"error.size_invalid":              "Kích thước không hợp lệ",
	"error.color_invalid":             "Màu đã chọn không thuộc sản phẩm",
	"error.product_not_found":         "Không tìm thấy sản phẩm",
	"error.product_unavailable":       "Sản phẩm hiện không bán",
	"error.product_not_customizable":  "Sản phẩm không hỗ trợ tùy chỉnh",
	"error.quantity_invalid":          "Số lượng không hợp lệ",
	"error.quantity_below_minimum":    "Số lượng tối thiểu là 1",
	"error.quantity_above_maximum":    "Số lượng vượt quá giới hạn cho phép",
	"error.direction_invalid":         "Hướng thay đổi phải là increase hoặc decrease",
	"error.cart_item_not_found":       "Không tìm thấy sản phẩm trong giỏ hàng",
	"error.cart_empty":                "Giỏ hàng đang trống",
	"error.cart_full":                 "Giỏ hàng đã đạt số dòng tối đa",
	"error.wizard_step_invalid":       "Thao tác không hợp lệ ở bước hiện tại",
	"error.wizard_color_required":     "Vui lòng chọn một màu",
	"error.wizard_color_not_allowed":  "Màu đã chọn không nằm trong danh sách cho phép",
	"error.wizard_scent_required":     "Vui lòng chọn ít nhất một mùi hương",
	"error.wizard_scent_invalid":      "Mùi hương không hợp lệ",
	"error.wizard_scent_limit":        "Chỉ được chọn tối đa %d mùi hương",
	"error.wizard_title_required":     "Vui lòng nhập nội dung nhãn",
	"error.wizard_title_too_long":     "Nội dung nhãn quá dài",
	"error.wizard_logo_size_invalid":  "Kích thước logo phải là M hoặc L",
	"error.wizard_approval_required":  "Vui lòng xác nhận thiết kế trước khi thêm vào giỏ",
	"error.customer_name_required":    "Vui lòng nhập họ tên",
	"error.customer_email_invalid":    "Email không hợp lệ",
	"error.customer_phone_required":   "Vui lòng nhập số điện thoại",
	"error.shipping_address_required": "Vui lòng nhập địa chỉ giao hàng",
	"error.order_not_found":           "Không tìm thấy đơn hàng",
	"error.order_status_invalid":      "Không thể chuyển sang trạng thái này",
	"error.order_immutable":           "Đơn hàng đã kết thúc, không thể thay đổi",
	"error.login_failed":              "Sai tên đăng nhập hoặc mật khẩu",
	"error.captcha_required":          "Vui lòng nhập mã xác nhận",
	"error.captcha_invalid":           "Mã xác nhận không đúng",
	"error.password_old_invalid":      "Mật khẩu cũ không đúng",
	"error.password_min_length":       "Mật khẩu phải có ít nhất %d ký tự",
	"error.password_require_upper":    "Mật khẩu phải có chữ in hoa",
	"error.password_require_lower":    "Mật khẩu phải có chữ thường",
	"error.password_require_number":   "Mật khẩu phải có chữ số",
	"error.password_require_special":  "Mật khẩu phải có ký tự đặc biệt",
	"error.password_weak":             "Mật khẩu chưa đủ mạnh",
	"error.user_not_found":            "Không tìm thấy khách hàng",
	"error.user_email_exists":         "Email đã được sử dụng",
	"error.user_status_invalid":       "Trạng thái tài khoản không hợp lệ",
	"error.admin_not_found":           "Không tìm thấy quản trị viên",
	"error.role_invalid":              "Vai trò không hợp lệ",
	"error.post_not_found":            "Không tìm thấy bài viết",
	"error.title_required":            "Tiêu đề là bắt buộc",
	"error.file_missing":              "Vui lòng chọn tệp tải lên",
	"error.file_too_large":            "Tệp vượt quá dung lượng cho phép",
	"error.file_type_invalid":         "Định dạng tệp không được hỗ trợ",
	"error.image_too_large":           "Kích thước ảnh vượt quá giới hạn",
	"error.upload_scene_invalid":      "Loại tải lên không hợp lệ",
	"error.upload_failed":             "Tải tệp thất bại",
	"email.order_status_subject":      "[%s] Đơn hàng %s: %s",
	"email.order_status_body":         "Xin chào %s,\n\nĐơn hàng %s của bạn đã được cập nhật sang trạng thái: %s.\nTổng thanh toán: %s %s\n\nCảm ơn bạn đã mua sắm tại Art Exhibition.",
	"email.order_status_lookup_tip":   "Bạn có thể tra cứu đơn hàng bằng mã đơn và email đặt hàng.",
	"order.status.pending":            "Chờ xác nhận",
	"order.status.confirmed":          "Đã xác nhận",
	"order.status.shipped":            "Đang giao",
	"order.status.delivered":          "Đã giao",
	"order.status.cancelled":          "Đã hủy",
}
