package llm

import (
	"github.com/google/generative-ai-go/genai"
)

// systemInstruction is the fixed product persona. The assistant always
// answers in Thai and is responsible for normalizing spoken dates (including
// Buddhist-era years) into YYYY-MM-DD before calling ADD_BOOKING.
const systemInstruction = `คุณคือผู้ช่วย AI สำหรับจัดการโรงแรม (Hotel ERP Assistant) ที่ฉลาดและเชี่ยวชาญ ตอบเป็นภาษาไทยเสมอ ทำความเข้าใจคำสั่งของผู้ใช้และเรียกใช้ฟังก์ชันที่เหมาะสมเพื่อทำงานให้สำเร็จ เมื่อจัดการการจองห้องพัก คุณต้องตีความวันที่จากภาษาพูดให้เป็นรูปแบบ YYYY-MM-DD ได้เอง เช่น "วันนี้", "พรุ่งนี้", "วันที่ 19", "20 ตุลา" หรือปี พ.ศ. (เช่น 2568 ต้องแปลงเป็น 2025) โดยไม่ต้องถามผู้ใช้ซ้ำเรื่องรูปแบบวันที่ เมื่อได้รับคำสั่งเช็คอิน ให้รวบรวมข้อมูลที่จำเป็น: "ชื่อผู้เข้าพัก", "ประเภทห้อง" ("Standard" หรือ "Standard Twin"), "วันเช็คอิน", และ "วันเช็คเอาท์" หากข้อมูลส่วนอื่นขาดหายไป ให้ถามกลับเพื่อขอข้อมูลเพิ่มเติมจนครบ แล้วจึงเรียกใช้ฟังก์ชัน ADD_BOOKING เสมอ หลังจากเรียก ADD_BOOKING คุณจะได้รับข้อมูลการจองที่ "รอการชำระเงิน" พร้อมยอดมัดจำ ให้แจ้งผู้ใช้ว่าการจองยังไม่สมบูรณ์ และแนะนำให้ผู้ใช้อัปโหลดสลิปเพื่อยืนยันการจอง หากผู้ใช้ต้องการบันทึกรายจ่าย (อาจมีการแนบรูปภาพบิลมาด้วย) ให้รวบรวมข้อมูล "จำนวนเงิน" และ "รายละเอียด" จากข้อความ แล้วเรียกใช้ฟังก์ชัน ADD_EXPENSE หากผู้ใช้ต้องการส่งออกข้อมูลหรือสร้างรายงาน ให้เรียกใช้ฟังก์ชัน EXPORT_DATA พร้อมระบุประเภทข้อมูลและข้อมูลที่เกี่ยวข้อง หากผู้ใช้ขอดูเมนู ให้เรียกฟังก์ชัน SHOW_MAIN_MENU`

// toolCatalog declares every action kind as a callable function. One
// declaration per kind, submitted once at session start; the model selects
// zero or more by name per turn.
func toolCatalog() []*genai.FunctionDeclaration {
	noParams := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}

	return []*genai.FunctionDeclaration{
		{
			Name:        "SHOW_MAIN_MENU",
			Description: "แสดงเมนูหลักที่มีคำสั่งให้เลือกทั้งหมด",
			Parameters:  noParams,
		},
		{
			Name:        "GET_STATUS",
			Description: "ดูสรุปสถานะห้องพักทั้งหมด ว่ามีห้องว่าง และไม่ว่างกี่ห้อง",
			Parameters:  noParams,
		},
		{
			Name:        "GET_BOOKING_CALENDAR",
			Description: "ดูข้อมูลการจองห้องพักในรูปแบบปฏิทิน",
			Parameters:  noParams,
		},
		{
			Name:        "ADD_BOOKING",
			Description: "บันทึกข้อมูลการเข้าพักใหม่สำหรับแขกรายวัน",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"guest_name": {Type: genai.TypeString, Description: "ชื่อของแขกที่เข้าพัก"},
					"room_type": {
						Type:        genai.TypeString,
						Description: "ประเภทห้องพัก 'Standard' หรือ 'Standard Twin'",
						Enum:        []string{"Standard", "Standard Twin"},
					},
					"start_date": {Type: genai.TypeString, Description: "วันเช็คอิน รูปแบบ YYYY-MM-DD"},
					"end_date":   {Type: genai.TypeString, Description: "วันเช็คเอาท์ รูปแบบ YYYY-MM-DD"},
				},
				Required: []string{"guest_name", "room_type", "start_date", "end_date"},
			},
		},
		{
			Name:        "GET_EMPLOYEE_MANAGEMENT",
			Description: "เข้าสู่เมนูการจัดการข้อมูลพนักงาน",
			Parameters:  noParams,
		},
		{
			Name:        "GET_MONTHLY_TENANTS",
			Description: "ดูรายชื่อและข้อมูลผู้เช่ารายเดือนทั้งหมด",
			Parameters:  noParams,
		},
		{
			Name:        "GET_FINANCIAL_SUMMARY",
			Description: "ดูสรุปการเงินภาพรวม สามารถระบุเป็นรายวันหรือรายเดือนได้",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": {
						Type:        genai.TypeString,
						Description: "ช่วงเวลาที่ต้องการสรุปผล 'daily' สำหรับรายวัน หรือ 'monthly' สำหรับรายเดือน",
						Enum:        []string{"daily", "monthly"},
					},
				},
				Required: []string{"period"},
			},
		},
		{
			Name:        "ADD_EXPENSE",
			Description: "บันทึกรายการรายจ่ายใหม่ ประกอบด้วยจำนวนเงินและรายละเอียด",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"amount":      {Type: genai.TypeNumber, Description: "จำนวนเงินของรายจ่าย"},
					"description": {Type: genai.TypeString, Description: "รายละเอียดของรายจ่าย เช่น ค่ากาแฟ, ค่าวัสดุ"},
				},
				Required: []string{"amount", "description"},
			},
		},
		{
			Name:        "EXPORT_DATA",
			Description: "ส่งออกข้อมูล เช่น สรุปการเงิน, สถานะห้อง, รายชื่อพนักงาน หรือผู้เช่ารายเดือน ไปยังไฟล์ Google Sheet และให้ลิงก์สำหรับดาวน์โหลดหรือเปิดดู",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"report_type": {
						Type:        genai.TypeString,
						Description: "ประเภทของข้อมูลที่ต้องการส่งออก",
						Enum: []string{
							"FINANCIAL_SUMMARY",
							"ROOM_STATUS",
							"EMPLOYEE_MANAGEMENT",
							"MONTHLY_TENANT_MANAGEMENT",
						},
					},
					"data_to_export": {
						Type:        genai.TypeObject,
						Description: "ข้อมูล object หรือ array ของข้อมูลที่จะถูกส่งออก",
					},
				},
				Required: []string{"report_type", "data_to_export"},
			},
		},
	}
}
