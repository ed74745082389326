package i18n

var dictionary = map[string]map[string]string{
	"en": {
		"site.title":           "Siam Trails",
		"site.tagline":         "Small-group tours across Thailand",
		"nav.home":             "Home",
		"nav.tours":            "Tours",
		"tours.all":            "All tours",
		"tours.empty":          "No tours found.",
		"tours.from":           "From",
		"tours.duration":       "Duration",
		"tours.location":       "Location",
		"tours.discount":       "%d%% off",
		"tours.reviews":        "Reviews",
		"tours.noReviews":      "No reviews yet.",
		"booking.title":        "Book this tour",
		"booking.name":         "Full name",
		"booking.email":        "Email",
		"booking.phone":        "Phone",
		"booking.date":         "Travel date",
		"booking.guests":       "Guests",
		"booking.requests":     "Special requests",
		"booking.submit":       "Request booking",
		"booking.confirmed":    "Booking received",
		"booking.reference":    "Your reference code",
		"booking.total":        "Total",
		"booking.status":       "Status",
		"booking.error":        "Please check the booking details and try again.",
		"booking.failed":       "We could not save your booking. Please try again later.",
		"status.pending":       "Pending",
		"status.confirmed":     "Confirmed",
		"status.cancelled":     "Cancelled",
		"notFound.title":       "Page not found",
		"notFound.back":        "Back to home",
		"announcement.dismiss": "Close",
		"tours.search":         "Search tours",
		"reviews.write":        "Write a review",
		"reviews.name":         "Your name",
		"reviews.rating":       "Rating",
		"reviews.comment":      "Comment",
		"reviews.submit":       "Submit review",
		"reviews.thanks":       "Thanks! Your review will appear once approved.",
		"booking.lookup":       "Find my booking",
	},
	"th": {
		"site.title":           "สยามเทรลส์",
		"site.tagline":         "ทัวร์กลุ่มเล็กทั่วประเทศไทย",
		"nav.home":             "หน้าแรก",
		"nav.tours":            "ทัวร์",
		"tours.all":            "ทัวร์ทั้งหมด",
		"tours.empty":          "ไม่พบทัวร์",
		"tours.from":           "เริ่มต้น",
		"tours.duration":       "ระยะเวลา",
		"tours.location":       "สถานที่",
		"tours.discount":       "ลด %d%%",
		"tours.reviews":        "รีวิว",
		"tours.noReviews":      "ยังไม่มีรีวิว",
		"booking.title":        "จองทัวร์นี้",
		"booking.name":         "ชื่อ-นามสกุล",
		"booking.email":        "อีเมล",
		"booking.phone":        "โทรศัพท์",
		"booking.date":         "วันเดินทาง",
		"booking.guests":       "จำนวนผู้เดินทาง",
		"booking.requests":     "คำขอพิเศษ",
		"booking.submit":       "ส่งคำขอจอง",
		"booking.confirmed":    "ได้รับการจองแล้ว",
		"booking.reference":    "รหัสอ้างอิงของคุณ",
		"booking.total":        "ยอดรวม",
		"booking.status":       "สถานะ",
		"booking.error":        "กรุณาตรวจสอบข้อมูลการจองแล้วลองอีกครั้ง",
		"booking.failed":       "ไม่สามารถบันทึกการจองได้ กรุณาลองใหม่ภายหลัง",
		"status.pending":       "รอดำเนินการ",
		"status.confirmed":     "ยืนยันแล้ว",
		"status.cancelled":     "ยกเลิกแล้ว",
		"notFound.title":       "ไม่พบหน้านี้",
		"notFound.back":        "กลับหน้าแรก",
		"announcement.dismiss": "ปิด",
		"tours.search":         "ค้นหาทัวร์",
		"reviews.write":        "เขียนรีวิว",
		"reviews.name":         "ชื่อของคุณ",
		"reviews.rating":       "คะแนน",
		"reviews.comment":      "ความคิดเห็น",
		"reviews.submit":       "ส่งรีวิว",
		"reviews.thanks":       "ขอบคุณ! รีวิวของคุณจะแสดงหลังได้รับการอนุมัติ",
		"booking.lookup":       "ค้นหาการจองของฉัน",
	},
	"zh": {
		"site.title":           "暹罗足迹",
		"site.tagline":         "泰国小团旅游",
		"nav.home":             "首页",
		"nav.tours":            "旅游线路",
		"tours.all":            "全部线路",
		"tours.empty":          "没有找到线路。",
		"tours.from":           "起价",
		"tours.duration":       "行程时长",
		"tours.location":       "地点",
		"tours.discount":       "优惠 %d%%",
		"tours.reviews":        "评价",
		"tours.noReviews":      "暂无评价。",
		"booking.title":        "预订此线路",
		"booking.name":         "姓名",
		"booking.email":        "电子邮箱",
		"booking.phone":        "电话",
		"booking.date":         "出行日期",
		"booking.guests":       "人数",
		"booking.requests":     "特别要求",
		"booking.submit":       "提交预订",
		"booking.confirmed":    "预订已收到",
		"booking.reference":    "您的预订编号",
		"booking.total":        "总价",
		"booking.status":       "状态",
		"booking.error":        "请检查预订信息后重试。",
		"booking.failed":       "暂时无法保存您的预订，请稍后再试。",
		"status.pending":       "待确认",
		"status.confirmed":     "已确认",
		"status.cancelled":     "已取消",
		"notFound.title":       "页面不存在",
		"notFound.back":        "返回首页",
		"announcement.dismiss": "关闭",
		"tours.search":         "搜索旅游",
		"reviews.write":        "写评论",
		"reviews.name":         "您的名字",
		"reviews.rating":       "评分",
		"reviews.comment":      "评论",
		"reviews.submit":       "提交评论",
		"reviews.thanks":       "谢谢！您的评论将在审核后显示。",
		"booking.lookup":       "查找我的预订",
	},
}

// T looks up key for locale, falling back to English and then to the key itself
func T(locale, key string) string {
	if s, ok := dictionary[locale][key]; ok {
		return s
	}
	if s, ok := dictionary[DefaultLocale][key]; ok {
		return s
	}
	return key
}
