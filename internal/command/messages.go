package command

const (
	msgEmpty          = "등록된 기념일이 없는걸? 최초의 기념일을 등록해봐! 기념일을 등록하려면 `!anniversary add <이름> <YYYYMMDD>` 로 할 수 있어!"
	msgMissingTitle   = "기념일 이름을 등록해줘! 예를들면 우리의 1일!?"
	msgAddBadDate     = "날짜 형식을 `YYYYMMDD`로 바꿔서 다시 해줘!"
	msgBadDate        = "올바른 날짜 포맷(YYYYMMDD)로 입력해줘! 😡"
	msgDuplicate      = "그 날짜에는 이미 기념일이 있어! 수정하려면 `!anniversary edit <YYYYMMDD> <새이름>` 을 써줘."
	msgAdded          = "기념일이 등록됐어!! %s 까지 남은 날은 %d일이야"
	msgEditNotFound   = "첫 날짜가 존재하는 기념일인지 체크해볼래?"
	msgEdited         = "기념일이 업데이트 됐어: %s (%s): D-%d"
	msgEditPicker     = "수정할 기념일의 날짜와 새로운 이름을 입력해줘.\n%s"
	msgRemoveNotFound = "그 날짜에 기념일이 없는걸?"
	msgRemoved        = "기념일이 삭제됐어 😃"
	msgRemovePicker   = "삭제할 기념일의 날짜를 입력해줘:\n%s"
	msgHelp           = "--------지원하는 커맨드--------\n\n" +
		"기념일 보기: `!anniversary`\n" +
		"기념일 등록: `!anniversary add <이름> <YYYYMMDD>`\n" +
		"기념일 수정: `!anniversary edit <YYYYMMDD> <새로운 이름>`\n" +
		"기념일 삭제: `!anniversary remove <YYYYMMDD>`\n\n" +
		"이름에 `N주년` 을 넣으면 몇 주년인지 자동으로 세어줄게!"
)
